package handlers

import (
	"net/http"

	"github.com/BlackRoad-OS/command-center/pkg/models"
)

func (h *Handlers) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.Cloudflare.ListWorkers(r.Context())
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Worker, 0, len(workers))
	for _, wk := range workers {
		out = append(out, models.Worker{ID: wk.ID, CreatedOn: wk.CreatedOn, ModifiedOn: wk.ModifiedOn})
	}
	RespondJSON(w, http.StatusOK, out)
}

func (h *Handlers) ListKVNamespaces(w http.ResponseWriter, r *http.Request) {
	namespaces, err := h.Cloudflare.ListKVNamespaces(r.Context())
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.KVNamespace, 0, len(namespaces))
	for _, ns := range namespaces {
		out = append(out, models.KVNamespace{ID: ns.ID, Title: ns.Title})
	}
	RespondJSON(w, http.StatusOK, out)
}

func (h *Handlers) ListD1Databases(w http.ResponseWriter, r *http.Request) {
	databases, err := h.Cloudflare.ListD1Databases(r.Context())
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.D1Database, 0, len(databases))
	for _, db := range databases {
		out = append(out, models.D1Database{UUID: db.UUID, Name: db.Name, Version: db.Version})
	}
	RespondJSON(w, http.StatusOK, out)
}
