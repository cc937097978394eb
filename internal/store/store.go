// Package store provides the record store interface and implementations
// for the gateway's Agent entities. Handlers depend only on the Store
// interface, so tests run against the in-memory implementation while
// production uses PostgreSQL.
package store

import (
	"context"

	"github.com/BlackRoad-OS/command-center/pkg/models"
)

// DefaultListLimit caps ListAgents results.
const DefaultListLimit = 100

// Store is the record store used by the agent handlers.
type Store interface {
	CreateAgent(ctx context.Context, agent *models.Agent) error
	ListAgents(ctx context.Context, limit int) ([]models.Agent, error)
	GetAgent(ctx context.Context, id string) (*models.Agent, error)

	// Ping checks if the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases all resources held by the store.
	Close() error
}

// ErrNotFound is returned when a requested entity does not exist.
// Handlers map it to a 404, as opposed to collaborator failures which
// propagate as 500s.
type ErrNotFound struct {
	Entity string
	Key    string
}

func (e *ErrNotFound) Error() string {
	return e.Entity + " not found: " + e.Key
}
