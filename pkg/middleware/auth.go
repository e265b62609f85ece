package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/telvana/tsr-tracker/modules/core/services"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/configuration"
	"github.com/telvana/tsr-tracker/pkg/httpapi"
)

// Authorize resolves the session cookie to a stored session. Requests without
// a valid session pass through unauthenticated; guarding is left to
// RequireAuthenticated further down the chain.
func Authorize() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(conf.SidCookieKey)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			app, err := composables.UseApp(r.Context())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			authService := app.Service(services.AuthService{}).(*services.AuthService)
			sess, err := authService.Authorize(r.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := composables.WithSession(r.Context(), sess)
			if params, ok := composables.UseParams(ctx); ok {
				params.Authenticated = true
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProvideUser loads the session's user into the context.
func ProvideUser() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := composables.UseSession(r.Context())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			app, err := composables.UseApp(r.Context())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			userService := app.Service(services.UserService{}).(*services.UserService)
			u, err := userService.GetByID(r.Context(), sess.UserID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithUser(r.Context(), u)))
		})
	}
}

// RequireAuthenticated rejects unauthenticated API traffic with a 401.
func RequireAuthenticated() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !composables.UseAuthenticated(r.Context()) {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
