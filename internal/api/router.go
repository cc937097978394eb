// Package api builds the gateway's HTTP router: one handler group per
// upstream provider plus the agents, notify, and stats groups.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/BlackRoad-OS/command-center/internal/api/handlers"
	"github.com/BlackRoad-OS/command-center/internal/api/middleware"
)

// KnownPrefixes are the top-level route groups, returned in the global
// 404 hint so callers learn what the gateway serves.
var KnownPrefixes = []string{
	"/github",
	"/stripe",
	"/hf",
	"/cf",
	"/agents",
	"/notify",
	"/stats",
	"/health",
}

// Per-group route hints for scoped 404/405 responses. A caller inside
// the wrong sub-API learns what is valid there, not the global list.
var (
	githubRoutes = []string{
		"GET /github/orgs",
		"GET /github/repos?org=",
		"POST /github/repo",
		"POST /github/file",
	}
	stripeRoutes = []string{
		"GET /stripe/products",
		"POST /stripe/product",
		"GET /stripe/customers",
	}
	hfRoutes = []string{
		"GET /hf/models?q=",
		"GET /hf/spaces?q=",
	}
	cfRoutes = []string{
		"GET /cf/workers",
		"GET /cf/kv",
		"GET /cf/d1",
	}
	agentRoutes = []string{
		"POST /agents",
		"GET /agents",
		"GET /agents/{id}",
	}
	notifyRoutes = []string{
		"POST /notify",
	}
)

// NewRouter creates the HTTP router with all gateway routes.
func NewRouter(h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Logger)
	r.Use(middleware.Telemetry)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFoundHandler(KnownPrefixes))
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler(KnownPrefixes))

	// Health
	r.Get("/", h.Health)
	r.Get("/health", h.Health)
	r.Get("/stats", h.GetStats)

	r.Route("/github", func(r chi.Router) {
		r.NotFound(handlers.NotFoundHandler(githubRoutes))
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler(githubRoutes))
		r.Get("/orgs", h.ListOrgs)
		r.Get("/repos", h.ListRepos)
		r.Post("/repo", h.CreateRepo)
		r.Post("/file", h.UpsertFile)
	})

	r.Route("/stripe", func(r chi.Router) {
		r.NotFound(handlers.NotFoundHandler(stripeRoutes))
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler(stripeRoutes))
		r.Get("/products", h.ListProducts)
		r.Post("/product", h.CreateProduct)
		r.Get("/customers", h.ListCustomers)
	})

	r.Route("/hf", func(r chi.Router) {
		r.NotFound(handlers.NotFoundHandler(hfRoutes))
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler(hfRoutes))
		r.Get("/models", h.SearchModels)
		r.Get("/spaces", h.SearchSpaces)
	})

	r.Route("/cf", func(r chi.Router) {
		r.NotFound(handlers.NotFoundHandler(cfRoutes))
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler(cfRoutes))
		r.Get("/workers", h.ListWorkers)
		r.Get("/kv", h.ListKVNamespaces)
		r.Get("/d1", h.ListD1Databases)
	})

	r.Route("/agents", func(r chi.Router) {
		r.NotFound(handlers.NotFoundHandler(agentRoutes))
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler(agentRoutes))
		r.Post("/", h.CreateAgent)
		r.Get("/", h.ListAgents)
		r.Get("/{id}", h.GetAgent)
	})

	r.Route("/notify", func(r chi.Router) {
		r.NotFound(handlers.NotFoundHandler(notifyRoutes))
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler(notifyRoutes))
		r.Post("/", h.SendNotification)
	})

	return r
}
