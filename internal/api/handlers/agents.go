package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BlackRoad-OS/command-center/internal/store"
	"github.com/BlackRoad-OS/command-center/pkg/models"
)

func (h *Handlers) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string     `json:"name"`
		Type         string     `json:"type"`
		Capabilities []string   `json:"capabilities"`
		Birthday     *time.Time `json:"birthday"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		RespondError(w, http.StatusBadRequest, "Request must include a non-empty 'name' field")
		return
	}

	now := time.Now().UTC()
	agent := models.Agent{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Type:         req.Type,
		Capabilities: req.Capabilities,
		Birthday:     now,
		CreatedAt:    now,
	}
	if agent.Type == "" {
		agent.Type = models.DefaultAgentType
	}
	if req.Birthday != nil {
		agent.Birthday = req.Birthday.UTC()
	}

	if err := h.Store.CreateAgent(r.Context(), &agent); err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("agent", agent.Name).Str("id", agent.ID).Msg("Agent created")
	RespondJSON(w, http.StatusCreated, map[string]string{
		"id":   agent.ID,
		"name": agent.Name,
	})
}

func (h *Handlers) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Store.ListAgents(r.Context(), store.DefaultListLimit)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	RespondJSON(w, http.StatusOK, agents)
}

func (h *Handlers) GetAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	agent, err := h.Store.GetAgent(r.Context(), id)
	if err != nil {
		if _, ok := err.(*store.ErrNotFound); ok {
			RespondError(w, http.StatusNotFound, "Agent not found")
		} else {
			RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	RespondJSON(w, http.StatusOK, agent)
}
