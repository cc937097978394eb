package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/command-center/internal/api"
	"github.com/BlackRoad-OS/command-center/internal/api/handlers"
	"github.com/BlackRoad-OS/command-center/internal/notify"
	"github.com/BlackRoad-OS/command-center/internal/providers/cloudflare"
	"github.com/BlackRoad-OS/command-center/internal/providers/github"
	"github.com/BlackRoad-OS/command-center/internal/providers/huggingface"
	"github.com/BlackRoad-OS/command-center/internal/providers/stripe"
	"github.com/BlackRoad-OS/command-center/internal/store"
)

// Empty-return fakes for every collaborator so each route dispatches.

type stubGitHub struct{}

func (stubGitHub) ListOrgs(ctx context.Context) ([]github.Org, error) {
	return []github.Org{}, nil
}
func (stubGitHub) ListRepos(ctx context.Context, org string) ([]github.Repo, error) {
	return []github.Repo{}, nil
}
func (stubGitHub) CreateRepo(ctx context.Context, org string, req github.CreateRepoRequest) (*github.Repo, error) {
	return &github.Repo{Name: req.Name}, nil
}
func (stubGitHub) GetFileSHA(ctx context.Context, org, repo, path string) (string, bool) {
	return "", false
}
func (stubGitHub) PutFile(ctx context.Context, org, repo, path string, req github.PutFileRequest) (*github.PutFileResponse, error) {
	return &github.PutFileResponse{}, nil
}

type stubStripe struct{}

func (stubStripe) ListProducts(ctx context.Context) ([]stripe.Product, error) {
	return []stripe.Product{}, nil
}
func (stubStripe) CreateProduct(ctx context.Context, name, description string) (*stripe.Product, error) {
	return &stripe.Product{ID: "prod_1", Name: name}, nil
}
func (stubStripe) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency, interval string) (*stripe.Price, error) {
	return &stripe.Price{ID: "price_1", UnitAmount: unitAmount, Currency: currency}, nil
}
func (stubStripe) CreatePaymentLink(ctx context.Context, priceID string, quantity int) (*stripe.PaymentLink, error) {
	return &stripe.PaymentLink{ID: "plink_1", URL: "https://buy.stripe.com/x"}, nil
}
func (stubStripe) ListCustomers(ctx context.Context) ([]stripe.Customer, error) {
	return []stripe.Customer{}, nil
}

type stubHF struct{}

func (stubHF) SearchModels(ctx context.Context, query string, limit int) ([]huggingface.Model, error) {
	return []huggingface.Model{}, nil
}
func (stubHF) SearchSpaces(ctx context.Context, query string, limit int) ([]huggingface.Space, error) {
	return []huggingface.Space{}, nil
}

type stubCF struct{}

func (stubCF) ListWorkers(ctx context.Context) ([]cloudflare.Worker, error) {
	return []cloudflare.Worker{}, nil
}
func (stubCF) ListKVNamespaces(ctx context.Context) ([]cloudflare.KVNamespace, error) {
	return []cloudflare.KVNamespace{}, nil
}
func (stubCF) ListD1Databases(ctx context.Context) ([]cloudflare.D1Database, error) {
	return []cloudflare.D1Database{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := handlers.New(stubGitHub{}, stubStripe{}, stubHF{}, stubCF{},
		store.NewMemoryStore(), notify.NewService(), "test", map[string]bool{"github": true})
	return api.NewRouter(h)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouting_SupportedRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   any
		want   int
	}{
		{http.MethodGet, "/", nil, http.StatusOK},
		{http.MethodGet, "/health", nil, http.StatusOK},
		{http.MethodGet, "/stats", nil, http.StatusOK},
		{http.MethodGet, "/github/orgs", nil, http.StatusOK},
		{http.MethodGet, "/github/repos?org=BlackRoad-OS", nil, http.StatusOK},
		{http.MethodPost, "/github/repo", map[string]any{"name": "r"}, http.StatusCreated},
		{http.MethodPost, "/github/file", map[string]any{"repo": "r", "path": "p", "content": "c"}, http.StatusOK},
		{http.MethodGet, "/stripe/products", nil, http.StatusOK},
		{http.MethodPost, "/stripe/product", map[string]any{"name": "Pro", "price": 9.99}, http.StatusCreated},
		{http.MethodGet, "/stripe/customers", nil, http.StatusOK},
		{http.MethodGet, "/hf/models?q=llama", nil, http.StatusOK},
		{http.MethodGet, "/hf/spaces", nil, http.StatusOK},
		{http.MethodGet, "/cf/workers", nil, http.StatusOK},
		{http.MethodGet, "/cf/kv", nil, http.StatusOK},
		{http.MethodGet, "/cf/d1", nil, http.StatusOK},
		{http.MethodPost, "/agents", map[string]any{"name": "scout"}, http.StatusCreated},
		{http.MethodGet, "/agents", nil, http.StatusOK},
		{http.MethodPost, "/notify", map[string]any{"message": "hi"}, http.StatusOK},
	}

	for _, tt := range tests {
		rec := doRequest(t, router, tt.method, tt.path, tt.body)
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), "%s %s", tt.method, tt.path)
	}
}

func TestRouting_GlobalNotFoundListsPrefixes(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error  string   `json:"error"`
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Routes)
	assert.Contains(t, resp.Routes, "/github")
	assert.Contains(t, resp.Routes, "/agents")
}

func TestRouting_ScopedNotFoundListsGroupRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/github/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error  string   `json:"error"`
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Routes, "POST /github/file")
	assert.NotContains(t, resp.Routes, "/stripe")
}

func TestRouting_NotifyRequiresPost(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/notify", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouting_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/agents", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAgents_CreateListGet(t *testing.T) {
	router := newTestRouter(t)

	// Empty store lists an empty sequence, not an error.
	rec := doRequest(t, router, http.MethodGet, "/agents", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	// Two identical creates yield two distinct identifiers.
	body := map[string]any{"name": "scout", "capabilities": []string{"search", "summarize"}}
	rec1 := doRequest(t, router, http.MethodPost, "/agents", body)
	rec2 := doRequest(t, router, http.MethodPost, "/agents", body)
	require.Equal(t, http.StatusCreated, rec1.Code)
	require.Equal(t, http.StatusCreated, rec2.Code)

	var created1, created2 struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec1.Body.Bytes(), &created1))
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &created2))
	assert.Equal(t, "scout", created1.Name)
	assert.NotEqual(t, created1.ID, created2.ID)

	// Fetch back with capabilities intact, in order.
	rec = doRequest(t, router, http.MethodGet, "/agents/"+created1.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var agent struct {
		ID           string   `json:"id"`
		Type         string   `json:"type"`
		Capabilities []string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agent))
	assert.Equal(t, created1.ID, agent.ID)
	assert.Equal(t, "general", agent.Type)
	assert.Equal(t, []string{"search", "summarize"}, agent.Capabilities)

	rec = doRequest(t, router, http.MethodGet, "/agents", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestAgents_GetMissingReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/agents/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Agent not found"}`, rec.Body.String())
}
