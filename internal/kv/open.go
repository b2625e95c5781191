package kv

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Open returns the store for driver. source is the Postgres DSN or the SQLite
// file path; an empty SQLite path means DefaultSQLitePath. Memory ignores it.
func Open(ctx context.Context, driver, source string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverPostgres:
		return OpenPostgres(ctx, source)
	case DriverSQLite, "":
		if source == "" {
			p, err := DefaultSQLitePath()
			if err != nil {
				return nil, fmt.Errorf("kv.Open: resolve data dir: %w", err)
			}
			source = p
		}
		return OpenSQLite(ctx, source)
	default:
		return nil, fmt.Errorf("kv.Open: unknown driver %q", driver)
	}
}
