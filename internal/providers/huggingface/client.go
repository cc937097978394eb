// Package huggingface wraps the Hugging Face Hub search API. All
// operations are read-only.
package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://huggingface.co/api"

// Client is the Hugging Face provider adapter.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
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

// New creates a Hugging Face client.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("huggingface API returned %d: %s", resp.StatusCode, string(respBody))
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// Model is the upstream model search hit.
type Model struct {
	ID        string `json:"id"`
	Downloads int64  `json:"downloads"`
	Likes     int64  `json:"likes"`
}

// SearchModels searches models by free-text query, limited to one page.
func (c *Client) SearchModels(ctx context.Context, query string, limit int) ([]Model, error) {
	q := url.Values{}
	q.Set("search", query)
	q.Set("limit", strconv.Itoa(limit))
	var models []Model
	if err := c.get(ctx, "/models", q, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// Space is the upstream space search hit.
type Space struct {
	ID    string `json:"id"`
	Likes int64  `json:"likes"`
	SDK   string `json:"sdk"`
}

// SearchSpaces searches spaces by free-text query, limited to one page.
func (c *Client) SearchSpaces(ctx context.Context, query string, limit int) ([]Space, error) {
	q := url.Values{}
	q.Set("search", query)
	q.Set("limit", strconv.Itoa(limit))
	var spaces []Space
	if err := c.get(ctx, "/spaces", q, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}
