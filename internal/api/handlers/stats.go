package handlers

import (
	"net/http"
	"time"

	"github.com/BlackRoad-OS/command-center/internal/store"
)

// Health reports service liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "blackroad-command-center",
		"version": h.Version,
	})
}

// GetStats reports gateway-level statistics: the agent count, which
// provider credentials were configured at startup, and uptime.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Store.ListAgents(r.Context(), store.DefaultListLimit)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	RespondJSON(w, http.StatusOK, map[string]any{
		"service":        "blackroad-command-center",
		"version":        h.Version,
		"uptime_seconds": int64(time.Since(h.StartedAt).Seconds()),
		"agents":         len(agents),
		"providers":      h.ProvidersConfigured,
	})
}
