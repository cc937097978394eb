// Package stripe wraps the Stripe API operations the gateway needs.
// Stripe takes form-urlencoded request bodies, not JSON, including
// bracketed keys for nested line items (line_items[0][price]).
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// Client is the Stripe provider adapter.
type Client struct {
	secretKey string
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

// New creates a Stripe client authenticated with the given secret key.
func New(secretKey string, opts ...Option) *Client {
	c := &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var reader io.Reader
	if form != nil {
		reader = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
		return fmt.Errorf("stripe API returned %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// list is Stripe's generic list envelope.
type list[T any] struct {
	Data []T `json:"data"`
}

// ── Products ────────────────────────────────────────────────

// Product is the upstream product shape.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListProducts returns existing products.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out list[Product]
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, name, description string) (*Product, error) {
	form := url.Values{}
	form.Set("name", name)
	if description != "" {
		form.Set("description", description)
	}
	var p Product
	if err := c.do(ctx, http.MethodPost, "/products", form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ── Prices ──────────────────────────────────────────────────

// Price is the upstream price shape.
type Price struct {
	ID         string `json:"id"`
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
}

// CreatePrice creates a price for a product. unitAmount is in minor
// units (cents); interval, when non-empty, makes the price recurring.
func (c *Client) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency, interval string) (*Price, error) {
	form := url.Values{}
	form.Set("product", productID)
	form.Set("unit_amount", strconv.FormatInt(unitAmount, 10))
	form.Set("currency", currency)
	if interval != "" {
		form.Set("recurring[interval]", interval)
	}
	var p Price
	if err := c.do(ctx, http.MethodPost, "/prices", form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ── Payment links ───────────────────────────────────────────

// PaymentLink is the upstream payment link shape.
type PaymentLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreatePaymentLink creates a payment link with a single line item.
func (c *Client) CreatePaymentLink(ctx context.Context, priceID string, quantity int) (*PaymentLink, error) {
	form := url.Values{}
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", strconv.Itoa(quantity))
	var pl PaymentLink
	if err := c.do(ctx, http.MethodPost, "/payment_links", form, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// ── Customers ───────────────────────────────────────────────

// Customer is the upstream customer shape.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ListCustomers returns existing customers.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out list[Customer]
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
