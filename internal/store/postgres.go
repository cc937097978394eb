package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackRoad-OS/command-center/pkg/models"
)

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
	psql sq.StatementBuilderType
}

// NewPostgresStore creates a PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool: pool,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *PostgresStore) CreateAgent(ctx context.Context, agent *models.Agent) error {
	blob, err := encodeCapabilities(agent.Capabilities)
	if err != nil {
		return fmt.Errorf("encode capabilities: %w", err)
	}

	query, args, err := s.psql.
		Insert("agents").
		Columns("id", "name", "type", "capabilities", "birthday", "created_at").
		Values(agent.ID, agent.Name, agent.Type, blob, agent.Birthday, agent.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListAgents(ctx context.Context, limit int) ([]models.Agent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query, args, err := s.psql.
		Select("id", "name", "type", "capabilities", "birthday", "created_at").
		From("agents").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	agents := []models.Agent{}
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, *agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agents: %w", err)
	}
	return agents, nil
}

func (s *PostgresStore) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	query, args, err := s.psql.
		Select("id", "name", "type", "capabilities", "birthday", "created_at").
		From("agents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	agent, err := scanAgent(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{Entity: "agent", Key: id}
		}
		return nil, fmt.Errorf("query agent: %w", err)
	}
	return agent, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgent(row rowScanner) (*models.Agent, error) {
	var agent models.Agent
	var blob string
	if err := row.Scan(
		&agent.ID,
		&agent.Name,
		&agent.Type,
		&blob,
		&agent.Birthday,
		&agent.CreatedAt,
	); err != nil {
		return nil, err
	}
	caps, err := decodeCapabilities(blob)
	if err != nil {
		return nil, fmt.Errorf("decode capabilities: %w", err)
	}
	agent.Capabilities = caps
	return &agent, nil
}
