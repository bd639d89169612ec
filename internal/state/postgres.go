package state

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// pgPool is the subset of pgxpool.Pool the store needs; pgxmock
// satisfies it in tests.
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresKV implements KV using a pgx connection pool.
type PostgresKV struct {
	pool pgPool
}

// NewPostgres creates a PostgresKV with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresKV, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresKV{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool, primarily for tests.
func NewPostgresFromPool(pool pgPool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the schema if missing.
func (s *PostgresKV) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

// Close releases the pool.
func (s *PostgresKV) Close() error {
	s.pool.Close()
	return nil
}

// Get returns the value for key, reporting absence via the boolean.
func (s *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, eris.Wrap(err, "postgres: get")
	}
	return value, true, nil
}

// Set upserts the value for key.
func (s *PostgresKV) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	return eris.Wrap(err, "postgres: set")
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *PostgresKV) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv WHERE key = $1`, key)
	return eris.Wrap(err, "postgres: remove")
}

// Clear deletes every key.
func (s *PostgresKV) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv`)
	return eris.Wrap(err, "postgres: clear")
}
