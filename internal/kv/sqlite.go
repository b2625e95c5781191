package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
	"github.com/pressly/goose/v3"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// SQLite is a Store persisted in a single SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path and applies
// pending migrations. The parent directory is created when missing.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("kv.OpenSQLite: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("kv.OpenSQLite: open: %w", err)
	}
	// SQLite serializes writers anyway; a single connection avoids
	// SQLITE_BUSY between pooled connections of the same process.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, goose.DialectSQLite3, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv.OpenSQLite: %w", err)
	}
	return &SQLite{db: db}, nil
}

// DefaultSQLitePath returns the database location under the XDG data
// directory, falling back to ~/.local/share.
func DefaultSQLitePath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "tripplanner", "tripplanner.db"), nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv.SQLite.Get: %w: %w", domain.ErrStorage, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv.SQLite.Set: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("kv.SQLite.Delete: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

func (s *SQLite) Keys(ctx context.Context, prefix string) ([]string, error) {
	// substr instead of LIKE: "_" in partition keys is a LIKE wildcard.
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM kv
		WHERE substr(key, 1, length(?)) = ?
		ORDER BY key
	`, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("kv.SQLite.Keys: %w: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("kv.SQLite.Keys: scan: %w: %w", domain.ErrStorage, err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv.SQLite.Keys: rows: %w: %w", domain.ErrStorage, err)
	}
	return keys, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
