package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// DB is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is a Store backed by the kv table of a Postgres database.
type Postgres struct {
	db   DB
	pool *pgxpool.Pool // non-nil only when the store owns the pool
}

// NewPostgres constructs a store on a caller-owned connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
// The schema must already be migrated.
func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

// OpenPostgres creates a pool for dsn, verifies the database is reachable,
// applies pending migrations and returns a store that closes the pool on Close.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("kv.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("kv.OpenPostgres: ping: %w", err)
	}

	// goose drives database/sql; borrow a *sql.DB view of the same pool.
	sqlDB := stdlib.OpenDBFromPool(pool)
	err = Migrate(ctx, goose.DialectPostgres, sqlDB)
	sqlDB.Close()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("kv.OpenPostgres: %w", err)
	}

	return &Postgres{db: pool, pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM kv WHERE key = @key`

	var value string
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv.Postgres.Get: %w: %w", domain.ErrStorage, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = excluded.value,
		    updated_at = now()`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("kv.Postgres.Set: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	const q = `DELETE FROM kv WHERE key = ANY(@keys)`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"keys": keys}); err != nil {
		return fmt.Errorf("kv.Postgres.Delete: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	const q = `
		SELECT key FROM kv
		WHERE starts_with(key, @prefix)
		ORDER BY key`

	rows, err := p.db.Query(ctx, q, pgx.NamedArgs{"prefix": prefix})
	if err != nil {
		return nil, fmt.Errorf("kv.Postgres.Keys: %w: %w", domain.ErrStorage, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("kv.Postgres.Keys: rows: %w: %w", domain.ErrStorage, err)
	}
	return keys, nil
}

// Close closes the pool if the store opened it; caller-owned connections are
// left untouched.
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
