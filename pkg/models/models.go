// Package models defines the data shapes exchanged between the gateway's
// HTTP surface, the provider adapters, and the record store.
//
// Everything except Agent is a read-through projection: a small, stable
// subset of an upstream object, created and discarded inside a single
// request. Agent is the only persisted entity.
package models

import "time"

// ── Agent (persisted) ───────────────────────────────────────

// DefaultAgentType is assigned when a create request omits the type.
const DefaultAgentType = "general"

// Agent is the gateway's internal agent record.
//
// Capabilities round-trip through the store as a JSON blob; the slice
// ordering is preserved.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Capabilities []string  `json:"capabilities"`
	Birthday     time.Time `json:"birthday"`
	CreatedAt    time.Time `json:"created_at"`
}

// ── GitHub projections ──────────────────────────────────────

// Organization is the projected shape of a GitHub org.
type Organization struct {
	Login       string `json:"login"`
	Description string `json:"description,omitempty"`
}

// Repository is the projected shape of a GitHub repository.
type Repository struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	HTMLURL     string `json:"url"`
}

// FileCommit is the projected result of a contents write.
type FileCommit struct {
	Path      string `json:"path"`
	SHA       string `json:"sha"`
	CommitSHA string `json:"commit_sha"`
	HTMLURL   string `json:"url,omitempty"`
	Updated   bool   `json:"updated"`
}

// ── Stripe projections ──────────────────────────────────────

// Product is the projected shape of a Stripe product.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Price is the projected shape of a Stripe price. Amount is in decimal
// currency units; UnitAmount is the integer minor-unit form sent upstream.
type Price struct {
	ID         string  `json:"id"`
	Amount     float64 `json:"amount"`
	UnitAmount int64   `json:"unit_amount"`
	Currency   string  `json:"currency"`
	Recurring  string  `json:"recurring,omitempty"`
}

// PaymentLink is the projected shape of a Stripe payment link.
type PaymentLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Customer is the projected shape of a Stripe customer.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// ── Hugging Face projections ────────────────────────────────

// Model is the projected shape of a Hugging Face model search hit.
type Model struct {
	ID        string `json:"id"`
	Downloads int64  `json:"downloads"`
	Likes     int64  `json:"likes"`
}

// Space is the projected shape of a Hugging Face space search hit.
type Space struct {
	ID    string `json:"id"`
	Likes int64  `json:"likes"`
	SDK   string `json:"sdk,omitempty"`
}

// ── Cloudflare projections ──────────────────────────────────

// Worker is the projected shape of a Cloudflare worker script.
type Worker struct {
	ID         string     `json:"id"`
	CreatedOn  *time.Time `json:"created_on,omitempty"`
	ModifiedOn *time.Time `json:"modified_on,omitempty"`
}

// KVNamespace is the projected shape of a Workers KV namespace.
type KVNamespace struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// D1Database is the projected shape of a D1 database.
type D1Database struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}
