package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/BlackRoad-OS/command-center/pkg/models"
)

// MemoryStore implements Store with in-memory maps. Used when no
// DATABASE_URL is configured (local dev) and in tests.
//
// Capabilities pass through the same JSON blob encoding the PostgreSQL
// store uses, so both implementations share round-trip behavior.
type MemoryStore struct {
	mu     sync.RWMutex
	agents map[string]*storedAgent
}

type storedAgent struct {
	agent        models.Agent
	capabilities string // JSON blob, same form the SQL store persists
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{agents: make(map[string]*storedAgent)}
}

func (m *MemoryStore) CreateAgent(ctx context.Context, agent *models.Agent) error {
	blob, err := encodeCapabilities(agent.Capabilities)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *agent
	m.agents[agent.ID] = &storedAgent{agent: cp, capabilities: blob}
	return nil
}

func (m *MemoryStore) ListAgents(ctx context.Context, limit int) ([]models.Agent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	agents := make([]models.Agent, 0, len(m.agents))
	for _, sa := range m.agents {
		a := sa.agent
		caps, err := decodeCapabilities(sa.capabilities)
		if err != nil {
			return nil, err
		}
		a.Capabilities = caps
		agents = append(agents, a)
	}
	sort.Slice(agents, func(i, j int) bool {
		return agents[i].CreatedAt.After(agents[j].CreatedAt)
	})
	if len(agents) > limit {
		agents = agents[:limit]
	}
	return agents, nil
}

func (m *MemoryStore) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sa, ok := m.agents[id]
	if !ok {
		return nil, &ErrNotFound{Entity: "agent", Key: id}
	}
	a := sa.agent
	caps, err := decodeCapabilities(sa.capabilities)
	if err != nil {
		return nil, err
	}
	a.Capabilities = caps
	return &a, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

// encodeCapabilities serializes the capability tags to their stored
// blob form. A nil slice round-trips to an empty list, never null.
func encodeCapabilities(caps []string) (string, error) {
	if caps == nil {
		caps = []string{}
	}
	data, err := json.Marshal(caps)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeCapabilities(blob string) ([]string, error) {
	if blob == "" {
		return []string{}, nil
	}
	var caps []string
	if err := json.Unmarshal([]byte(blob), &caps); err != nil {
		return nil, err
	}
	if caps == nil {
		caps = []string{}
	}
	return caps, nil
}
