// Package migrations embeds the SQL migration files so the SQLite and
// Postgres stores can apply them through the goose programmatic API at open
// time and in tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// The statements are portable between SQLite and Postgres.
//
//go:embed *.sql
var FS embed.FS
