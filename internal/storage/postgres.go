package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pinger is implemented by *pgxpool.Pool. pgx.Tx has no Ping, so the method
// is probed separately from the query interface.
type pinger interface {
	Ping(ctx context.Context) error
}

// Postgres is a Store backed by the kv_records table (see migrations).
// One row per key; Save upserts the whole blob.
type Postgres struct {
	db db
}

// NewPostgres constructs a Store over the provided connection. In production
// pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db}
}

// Load returns the blob stored under key, or ok=false when no row exists.
func (p *Postgres) Load(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM kv_records WHERE key = @key`

	var value string
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("storage.Postgres.Load %q: %w", key, err)
	}
	return value, true, nil
}

// Save upserts value under key.
func (p *Postgres) Save(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_records (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("storage.Postgres.Save %q: %w", key, err)
	}
	return nil
}

// Remove deletes the row under key. Zero rows affected is not an error.
func (p *Postgres) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_records WHERE key = @key`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("storage.Postgres.Remove %q: %w", key, err)
	}
	return nil
}

// Ping verifies the database is reachable. When the underlying connection is
// a transaction (tests), a trivial query stands in for pool.Ping.
func (p *Postgres) Ping(ctx context.Context) error {
	if pg, ok := p.db.(pinger); ok {
		if err := pg.Ping(ctx); err != nil {
			return fmt.Errorf("storage.Postgres.Ping: %w", err)
		}
		return nil
	}
	var one int
	if err := p.db.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("storage.Postgres.Ping: %w", err)
	}
	return nil
}

var _ Store = (*Postgres)(nil)
