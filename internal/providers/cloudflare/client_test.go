package cloudflare_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/command-center/internal/providers/cloudflare"
)

func TestListWorkers_ScopedToAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acct-1/workers/scripts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"result":  []map[string]any{{"id": "worker-a"}},
		})
	}))
	defer srv.Close()

	c := cloudflare.New("tok", "acct-1", cloudflare.WithBaseURL(srv.URL))
	workers, err := c.ListWorkers(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, "worker-a", workers[0].ID)
}

func TestNullResultIsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "result": nil})
	}))
	defer srv.Close()

	c := cloudflare.New("tok", "acct-1", cloudflare.WithBaseURL(srv.URL))

	workers, err := c.ListWorkers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, workers)
	assert.Empty(t, workers)

	namespaces, err := c.ListKVNamespaces(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, namespaces)
	assert.Empty(t, namespaces)

	databases, err := c.ListD1Databases(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, databases)
	assert.Empty(t, databases)
}

func TestUnsuccessfulEnvelopeIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"result":  nil,
			"errors":  []map[string]any{{"code": 10000, "message": "Authentication error"}},
		})
	}))
	defer srv.Close()

	c := cloudflare.New("tok", "acct-1", cloudflare.WithBaseURL(srv.URL))
	_, err := c.ListD1Databases(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Authentication error")
}
