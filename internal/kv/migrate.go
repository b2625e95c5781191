package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/alvesgeorge/PlanerTrip/migrations"
)

// Migrate applies every pending migration from migrations.FS to db using the
// given goose dialect (goose.DialectSQLite3 or goose.DialectPostgres).
func Migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB) error {
	provider, err := goose.NewProvider(dialect, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("kv.Migrate: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("kv.Migrate: up: %w", err)
	}
	return nil
}
