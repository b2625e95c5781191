// Package kv provides the key-value namespace the trip repository persists
// into. Values are opaque strings; the repository decides what they hold.
//
// Three backends share the Store contract: an in-memory map (tests and
// ephemeral runs), a SQLite file (local single-user storage) and Postgres
// (server deployments). Every backend wraps failures in domain.ErrStorage so
// callers can tell a broken store apart from missing data.
package kv

import (
	"context"
)

// Store is a flat string-to-string namespace.
type Store interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been written or was deleted; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes every listed key in a single atomic step.
	// Keys that do not exist are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Keys returns every key that starts with prefix, in ascending order.
	// An empty prefix lists the whole namespace.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the resources held by the store.
	Close() error
}
