// Package server provides the public entry point for initializing the
// Command Center gateway: configuration, telemetry, the record store,
// the provider clients, and the HTTP router.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/BlackRoad-OS/command-center/internal/api"
	"github.com/BlackRoad-OS/command-center/internal/api/handlers"
	"github.com/BlackRoad-OS/command-center/internal/config"
	"github.com/BlackRoad-OS/command-center/internal/database"
	"github.com/BlackRoad-OS/command-center/internal/notify"
	"github.com/BlackRoad-OS/command-center/internal/providers/cloudflare"
	"github.com/BlackRoad-OS/command-center/internal/providers/github"
	"github.com/BlackRoad-OS/command-center/internal/providers/huggingface"
	"github.com/BlackRoad-OS/command-center/internal/providers/stripe"
	"github.com/BlackRoad-OS/command-center/internal/store"
	"github.com/BlackRoad-OS/command-center/internal/telemetry"
)

// Server holds the initialized gateway.
type Server struct {
	// Handler is the HTTP handler with all routes and middleware.
	Handler http.Handler

	// Store is the agent record store.
	Store store.Store

	// Port is the port the server should listen on.
	Port int

	// ShutdownFunc should be called on graceful shutdown to flush telemetry.
	ShutdownFunc func(context.Context) error
}

// New initializes all gateway components from environment configuration.
func New(ctx context.Context) (*Server, error) {
	return NewWithConfig(ctx, config.Load())
}

// NewWithConfig initializes the gateway with an explicit configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*Server, error) {
	shutdown, err := telemetry.Init(cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	dataStore, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gh := github.New(cfg.Providers.GitHubToken)
	st := stripe.New(cfg.Providers.StripeSecretKey)
	hf := huggingface.New(cfg.Providers.HuggingFaceToken)
	cf := cloudflare.New(cfg.Providers.CloudflareToken, cfg.Providers.CloudflareAccountID)
	notifier := notify.NewService()

	providers := map[string]bool{
		"github":      cfg.Providers.GitHubToken != "",
		"stripe":      cfg.Providers.StripeSecretKey != "",
		"huggingface": cfg.Providers.HuggingFaceToken != "",
		"cloudflare":  cfg.Providers.CloudflareToken != "" && cfg.Providers.CloudflareAccountID != "",
	}

	h := handlers.New(gh, st, hf, cf, dataStore, notifier, cfg.Version, providers)
	router := api.NewRouter(h)

	return &Server{
		Handler:      router,
		Store:        dataStore,
		Port:         cfg.Port,
		ShutdownFunc: shutdown,
	}, nil
}

// newStore picks PostgreSQL when DATABASE_URL is set, otherwise the
// in-memory store for zero-config local runs.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.Database.URL == "" {
		log.Info().Msg("No DATABASE_URL configured, using in-memory store")
		return store.NewMemoryStore(), nil
	}

	pool, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConnections)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return store.NewPostgresStore(pool), nil
}
