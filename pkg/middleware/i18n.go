package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/telvana/tsr-tracker/pkg/application"
	"github.com/telvana/tsr-tracker/pkg/intl"
)

// ProvideLocalizer builds a localizer for the request's Accept-Language and
// stores it in the context for DTO validation messages and display labels.
func ProvideLocalizer(app application.Application) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept := r.Header.Get("Accept-Language")
			localizer := i18n.NewLocalizer(app.Bundle(), accept, "en")
			next.ServeHTTP(w, r.WithContext(intl.WithLocalizer(r.Context(), localizer)))
		})
	}
}
