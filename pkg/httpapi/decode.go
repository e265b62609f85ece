package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/telvana/tsr-tracker/pkg/composables"
)

// Decode unmarshals the request body into dto based on the request's content
// type, so browser form posts and JSON API clients share the same endpoints.
func Decode[T comparable](r *http.Request, dto T) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		_, err := composables.UseForm(dto, r)
		return err
	}
	return json.NewDecoder(r.Body).Decode(dto)
}
