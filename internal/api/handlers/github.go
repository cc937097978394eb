package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/BlackRoad-OS/command-center/internal/providers/github"
	"github.com/BlackRoad-OS/command-center/pkg/models"
)

// DefaultCommitMessage is used when a file write omits one.
const DefaultCommitMessage = "Update from BlackRoad Command Center"

func (h *Handlers) ListOrgs(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.GitHub.ListOrgs(r.Context())
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Organization, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, models.Organization{Login: o.Login, Description: o.Description})
	}
	RespondJSON(w, http.StatusOK, out)
}

func (h *Handlers) ListRepos(w http.ResponseWriter, r *http.Request) {
	org := r.URL.Query().Get("org")
	if org == "" {
		org = DefaultOrg
	}

	repos, err := h.GitHub.ListRepos(r.Context(), org)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		out = append(out, projectRepo(repo))
	}
	RespondJSON(w, http.StatusOK, out)
}

func (h *Handlers) CreateRepo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Org         string `json:"org"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Private     bool   `json:"private"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		RespondError(w, http.StatusBadRequest, "Request must include a non-empty 'name' field")
		return
	}
	if req.Org == "" {
		req.Org = DefaultOrg
	}

	repo, err := h.GitHub.CreateRepo(r.Context(), req.Org, github.CreateRepoRequest{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
		AutoInit:    true,
	})
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("org", req.Org).Str("repo", repo.Name).Msg("Repository created")
	RespondJSON(w, http.StatusCreated, map[string]any{
		"created": true,
		"name":    repo.Name,
		"url":     repo.HTMLURL,
	})
}

// UpsertFile is the one multi-step operation in the gateway: it
// pre-checks whether the path exists to obtain its revision marker,
// then writes. Omitting the marker asks the upstream for a create;
// including it asks for a compare-and-swap update. If the file changed
// between the two calls, the upstream rejects the write and that
// failure is surfaced unmodified — no retry, no marker re-resolution.
func (h *Handlers) UpsertFile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Org     string `json:"org"`
		Repo    string `json:"repo"`
		Path    string `json:"path"`
		Content string `json:"content"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Repo == "" || req.Path == "" {
		RespondError(w, http.StatusBadRequest, "Request must include 'repo' and 'path' fields")
		return
	}
	if req.Org == "" {
		req.Org = DefaultOrg
	}
	if req.Message == "" {
		req.Message = DefaultCommitMessage
	}

	put := github.PutFileRequest{
		Message: req.Message,
		Content: base64.StdEncoding.EncodeToString([]byte(req.Content)),
	}
	sha, found := h.GitHub.GetFileSHA(r.Context(), req.Org, req.Repo, req.Path)
	if found {
		put.SHA = sha
	}

	resp, err := h.GitHub.PutFile(r.Context(), req.Org, req.Repo, req.Path, put)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().
		Str("org", req.Org).
		Str("repo", req.Repo).
		Str("path", req.Path).
		Bool("updated", found).
		Msg("File written")

	RespondJSON(w, http.StatusOK, models.FileCommit{
		Path:      resp.Content.Path,
		SHA:       resp.Content.SHA,
		CommitSHA: resp.Commit.SHA,
		HTMLURL:   resp.Content.HTMLURL,
		Updated:   found,
	})
}

func projectRepo(repo github.Repo) models.Repository {
	return models.Repository{
		Name:        repo.Name,
		FullName:    repo.FullName,
		Description: repo.Description,
		Private:     repo.Private,
		HTMLURL:     repo.HTMLURL,
	}
}
