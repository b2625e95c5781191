// Package testutil provides shared helpers for integration tests.
// Postgres helpers skip automatically when TEST_DATABASE_URL is not set, so
// unit tests can run without a running database. SQLite helpers always run
// against a file in the test's temp dir.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/alvesgeorge/PlanerTrip/internal/kv"
)

// NewPool opens a *pgxpool.Pool connected to the database specified by the
// TEST_DATABASE_URL environment variable.
//
// The test is skipped automatically if TEST_DATABASE_URL is not set, so
// integration tests are opt-in and never break CI environments that lack a DB.
// The pool is closed automatically when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB connected to the database specified by the
// TEST_DATABASE_URL environment variable using the pgx database/sql driver.
//
// Use this when you need a *sql.DB rather than a *pgxpool.Pool - for example,
// when driving goose migrations in integration tests.
// The connection is closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// requireDSN returns the TEST_DATABASE_URL environment variable value,
// skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}

// NewSQLiteStore opens a migrated SQLite store in a fresh temp directory.
// The store is closed when the test finishes.
func NewSQLiteStore(t *testing.T) *kv.SQLite {
	t.Helper()

	store, err := kv.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "trips.db"))
	if err != nil {
		t.Fatalf("testutil.NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// NewPostgresStore returns a kv.Postgres store running inside a transaction
// that is rolled back when the test finishes. Migrations are applied first.
// Skipped when TEST_DATABASE_URL is not set.
func NewPostgresStore(t *testing.T) *kv.Postgres {
	t.Helper()

	db := NewSQLDB(t)
	if err := kv.Migrate(context.Background(), goose.DialectPostgres, db); err != nil {
		t.Fatalf("testutil.NewPostgresStore: migrate: %v", err)
	}

	pool := NewPool(t)
	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewPostgresStore: begin: %v", err)
	}
	t.Cleanup(func() {
		// Rollback discards all changes made during the test.
		_ = tx.Rollback(context.Background())
	})
	return kv.NewPostgres(tx)
}
