// Package cloudflare wraps the Cloudflare API listings the gateway
// exposes. All calls are scoped under a fixed account identifier.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

// Client is the Cloudflare provider adapter.
type Client struct {
	token     string
	accountID string
	baseURL   string
	client    *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a Cloudflare client scoped to one account.
func New(token, accountID string, opts ...Option) *Client {
	c := &Client{
		token:     token,
		accountID: accountID,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is Cloudflare's uniform response wrapper. Result may be null
// for empty listings; callers treat that as an empty slice.
type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) list(ctx context.Context, path string, out any) error {
	u := c.baseURL + "/accounts/" + c.accountID + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cloudflare API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if !env.Success {
		msg := "unknown error"
		if len(env.Errors) > 0 {
			msg = env.Errors[0].Message
		}
		return fmt.Errorf("cloudflare API error: %s", msg)
	}
	// Missing result list means no entries, not a failure.
	if env.Result == nil || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}

// Worker is the upstream worker script shape.
type Worker struct {
	ID         string     `json:"id"`
	CreatedOn  *time.Time `json:"created_on"`
	ModifiedOn *time.Time `json:"modified_on"`
}

// ListWorkers returns the account's worker scripts.
func (c *Client) ListWorkers(ctx context.Context) ([]Worker, error) {
	workers := []Worker{}
	if err := c.list(ctx, "/workers/scripts", &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// KVNamespace is the upstream Workers KV namespace shape.
type KVNamespace struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListKVNamespaces returns the account's KV namespaces.
func (c *Client) ListKVNamespaces(ctx context.Context) ([]KVNamespace, error) {
	namespaces := []KVNamespace{}
	if err := c.list(ctx, "/storage/kv/namespaces", &namespaces); err != nil {
		return nil, err
	}
	return namespaces, nil
}

// D1Database is the upstream D1 database shape.
type D1Database struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListD1Databases returns the account's D1 databases.
func (c *Client) ListD1Databases(ctx context.Context) ([]D1Database, error) {
	databases := []D1Database{}
	if err := c.list(ctx, "/d1/database", &databases); err != nil {
		return nil, err
	}
	return databases, nil
}
