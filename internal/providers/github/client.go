// Package github wraps the GitHub REST API calls the gateway needs:
// org/repo listing, repo creation, and the contents endpoint used by the
// create-or-update-file operation.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// userAgent identifies the gateway to GitHub. The API rejects requests
// without an identifying client string.
const userAgent = "blackroad-command-center"

// Client is the GitHub provider adapter.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (e.g. for tests or GHE).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a GitHub client authenticated with the given token.
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

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
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
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("github API returned %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// ── Organizations & repositories ────────────────────────────

// Org is the upstream organization shape.
type Org struct {
	Login       string `json:"login"`
	Description string `json:"description"`
}

// Repo is the upstream repository shape.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	HTMLURL     string `json:"html_url"`
}

// ListOrgs returns the organizations visible to the token.
func (c *Client) ListOrgs(ctx context.Context) ([]Org, error) {
	var orgs []Org
	if err := c.do(ctx, http.MethodGet, "/user/orgs", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListRepos returns the repositories of an organization.
func (c *Client) ListRepos(ctx context.Context, org string) ([]Repo, error) {
	var repos []Repo
	path := "/orgs/" + url.PathEscape(org) + "/repos"
	if err := c.do(ctx, http.MethodGet, path, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// CreateRepoRequest is the payload for repository creation.
type CreateRepoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

// CreateRepo creates a repository inside an organization.
func (c *Client) CreateRepo(ctx context.Context, org string, req CreateRepoRequest) (*Repo, error) {
	var repo Repo
	path := "/orgs/" + url.PathEscape(org) + "/repos"
	if err := c.do(ctx, http.MethodPost, path, req, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// ── Contents ────────────────────────────────────────────────

// contentsMeta is the metadata returned for an existing file.
type contentsMeta struct {
	SHA string `json:"sha"`
}

// GetFileSHA fetches the current revision marker for a file path.
//
// A failed lookup is expected control flow, not an error: it means the
// path does not exist yet and the subsequent write must omit the SHA so
// the upstream treats it as a create.
func (c *Client) GetFileSHA(ctx context.Context, org, repo, path string) (sha string, found bool) {
	var meta contentsMeta
	p := "/repos/" + url.PathEscape(org) + "/" + url.PathEscape(repo) + "/contents/" + path
	if err := c.do(ctx, http.MethodGet, p, nil, &meta); err != nil {
		return "", false
	}
	return meta.SHA, true
}

// PutFileRequest is the payload for the contents write. SHA is included
// only when updating an existing file; the upstream enforces
// compare-and-swap on it.
type PutFileRequest struct {
	Message string `json:"message"`
	Content string `json:"content"` // base64-encoded
	SHA     string `json:"sha,omitempty"`
}

// PutFileResponse is the upstream result of a contents write.
type PutFileResponse struct {
	Content struct {
		Path    string `json:"path"`
		SHA     string `json:"sha"`
		HTMLURL string `json:"html_url"`
	} `json:"content"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// PutFile creates or updates a file at path. The caller decides whether
// req.SHA carries a revision marker; a stale marker makes the upstream
// reject the write, and that failure is returned unmodified.
func (c *Client) PutFile(ctx context.Context, org, repo, path string, req PutFileRequest) (*PutFileResponse, error) {
	var out PutFileResponse
	p := "/repos/" + url.PathEscape(org) + "/" + url.PathEscape(repo) + "/contents/" + path
	if err := c.do(ctx, http.MethodPut, p, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
