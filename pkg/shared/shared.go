package shared

import (
	"net/http"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
)

// Decoder is the shared form decoder used by composables.UseForm.
var Decoder = form.NewDecoder()

// ParseID extracts a path variable from the request.
func ParseID(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
