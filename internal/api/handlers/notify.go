package handlers

import (
	"encoding/json"
	"net/http"
)

// SendNotification fans a message out to the requested channels.
// Channel names are a best-effort list, not a validated enum:
// unrecognized names are skipped silently and the response reports only
// the channels that actually sent.
func (h *Handlers) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message  string   `json:"message"`
		Channels []string `json:"channels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		RespondError(w, http.StatusBadRequest, "Request must include a non-empty 'message' field")
		return
	}

	sent := h.Notify.Dispatch(r.Context(), req.Message, req.Channels)
	RespondJSON(w, http.StatusOK, map[string]any{
		"message": req.Message,
		"sent":    sent,
	})
}
