package handlers

import (
	"net/http"

	"github.com/BlackRoad-OS/command-center/pkg/models"
)

// hfPageSize is the fixed page size for hub searches.
const hfPageSize = 20

func (h *Handlers) SearchModels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	hits, err := h.HuggingFace.SearchModels(r.Context(), query, hfPageSize)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Model, 0, len(hits))
	for _, m := range hits {
		out = append(out, models.Model{ID: m.ID, Downloads: m.Downloads, Likes: m.Likes})
	}
	RespondJSON(w, http.StatusOK, out)
}

func (h *Handlers) SearchSpaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	hits, err := h.HuggingFace.SearchSpaces(r.Context(), query, hfPageSize)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Space, 0, len(hits))
	for _, s := range hits {
		out = append(out, models.Space{ID: s.ID, Likes: s.Likes, SDK: s.SDK})
	}
	RespondJSON(w, http.StatusOK, out)
}
