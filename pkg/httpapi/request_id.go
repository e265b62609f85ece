package httpapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/telvana/tsr-tracker/pkg/configuration"
)

// EnsureRequestID returns the inbound request id, generating and echoing one
// when the client did not send it.
func EnsureRequestID(w http.ResponseWriter, r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(configuration.Use().RequestIDHeader)
	if header == "" {
		header = "X-Request-ID"
	}

	requestID := strings.TrimSpace(r.Header.Get(header))
	if requestID == "" {
		requestID = uuid.NewString()
		w.Header().Set(header, requestID)
	}
	return requestID
}

// Meta builds the standard error meta payload.
func Meta(w http.ResponseWriter, r *http.Request) map[string]string {
	return map[string]string{
		"request_id": EnsureRequestID(w, r),
	}
}
