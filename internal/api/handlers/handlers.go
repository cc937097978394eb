// Package handlers implements the HTTP handlers for the Command Center
// gateway. Each provider group projects a small stable subset of the
// upstream fields into the uniform response shape, decoupling callers
// from upstream schema churn.
package handlers

import (
	"context"
	"time"

	"github.com/BlackRoad-OS/command-center/internal/notify"
	"github.com/BlackRoad-OS/command-center/internal/providers/cloudflare"
	"github.com/BlackRoad-OS/command-center/internal/providers/github"
	"github.com/BlackRoad-OS/command-center/internal/providers/huggingface"
	"github.com/BlackRoad-OS/command-center/internal/providers/stripe"
	"github.com/BlackRoad-OS/command-center/internal/store"
)

// DefaultOrg is the organization used when a request omits one.
const DefaultOrg = "BlackRoad-OS"

// GitHubClient is the source-control collaborator surface.
type GitHubClient interface {
	ListOrgs(ctx context.Context) ([]github.Org, error)
	ListRepos(ctx context.Context, org string) ([]github.Repo, error)
	CreateRepo(ctx context.Context, org string, req github.CreateRepoRequest) (*github.Repo, error)
	GetFileSHA(ctx context.Context, org, repo, path string) (sha string, found bool)
	PutFile(ctx context.Context, org, repo, path string, req github.PutFileRequest) (*github.PutFileResponse, error)
}

// StripeClient is the payments collaborator surface.
type StripeClient interface {
	ListProducts(ctx context.Context) ([]stripe.Product, error)
	CreateProduct(ctx context.Context, name, description string) (*stripe.Product, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency, interval string) (*stripe.Price, error)
	CreatePaymentLink(ctx context.Context, priceID string, quantity int) (*stripe.PaymentLink, error)
	ListCustomers(ctx context.Context) ([]stripe.Customer, error)
}

// HuggingFaceClient is the model-hub collaborator surface.
type HuggingFaceClient interface {
	SearchModels(ctx context.Context, query string, limit int) ([]huggingface.Model, error)
	SearchSpaces(ctx context.Context, query string, limit int) ([]huggingface.Space, error)
}

// CloudflareClient is the infrastructure collaborator surface.
type CloudflareClient interface {
	ListWorkers(ctx context.Context) ([]cloudflare.Worker, error)
	ListKVNamespaces(ctx context.Context) ([]cloudflare.KVNamespace, error)
	ListD1Databases(ctx context.Context) ([]cloudflare.D1Database, error)
}

// Handlers holds all handler dependencies.
type Handlers struct {
	GitHub      GitHubClient
	Stripe      StripeClient
	HuggingFace HuggingFaceClient
	Cloudflare  CloudflareClient
	Store       store.Store
	Notify      *notify.Service

	Version   string
	StartedAt time.Time

	// ProvidersConfigured reports which upstream credentials were
	// injected at startup; exposed via /stats only, never the keys.
	ProvidersConfigured map[string]bool
}

// New creates a Handlers instance with all dependencies.
func New(gh GitHubClient, st StripeClient, hf HuggingFaceClient, cf CloudflareClient, s store.Store, n *notify.Service, version string, providers map[string]bool) *Handlers {
	return &Handlers{
		GitHub:              gh,
		Stripe:              st,
		HuggingFace:         hf,
		Cloudflare:          cf,
		Store:               s,
		Notify:              n,
		Version:             version,
		StartedAt:           time.Now().UTC(),
		ProvidersConfigured: providers,
	}
}
