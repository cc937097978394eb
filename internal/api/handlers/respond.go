package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// RespondJSON writes pretty-printed JSON with the given status code.
// Every response in the gateway, success or error, goes through here.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "encoding failure"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

// RespondError writes a standard error envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// NotFoundHandler returns a 404 handler listing the routes valid at the
// matched scope, so callers inside the wrong sub-API learn what exists
// there instead of getting the global prefix list.
func NotFoundHandler(routes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusNotFound, map[string]any{
			"error":  "Not found",
			"routes": routes,
		})
	}
}

// MethodNotAllowedHandler returns a 405 handler listing the routes
// valid at the matched scope.
func MethodNotAllowedHandler(routes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusMethodNotAllowed, map[string]any{
			"error":  "Method not allowed",
			"routes": routes,
		})
	}
}
