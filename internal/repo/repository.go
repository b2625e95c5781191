// Package repo is the trip data repository: the only component that reads
// and writes the key-value namespace.
//
// Each collection (the trip list and every per-trip partition) is stored as a
// single serialized list under its own key. Every write reads the whole list,
// changes it and writes it back, so a write costs O(n) in the partition size.
// That is fine for the tens of records a trip holds; a per-key mutex makes the
// read-modify-write cycle atomic within the process.
package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/kv"
)

// Record is implemented by every value stored in a list collection.
type Record interface {
	RecordID() string
}

// Repository stores trips and their partitioned child records.
// Construct one per application with New and share it; it is safe for
// concurrent use.
type Repository struct {
	store kv.Store
	log   *slog.Logger
	newID func() string
	locks keyLocks
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used to report skipped records and migrations.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// WithIDGenerator replaces the UUIDv7 generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) { r.newID = fn }
}

// New constructs a Repository on top of store.
func New(store kv.Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		log:   slog.Default(),
		newID: newUUIDv7,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateID returns a new globally unique record ID.
func (r *Repository) GenerateID() string {
	return r.newID()
}

// Close releases the underlying store.
func (r *Repository) Close() error {
	if err := r.store.Close(); err != nil {
		return fmt.Errorf("repo.Repository.Close: %w", err)
	}
	return nil
}

// ClearAll deletes every key in the namespace, legacy keys included.
func (r *Repository) ClearAll(ctx context.Context) error {
	unlock := r.locks.lock(keyTrips)
	defer unlock()

	keys, err := r.store.Keys(ctx, "")
	if err != nil {
		return fmt.Errorf("repo.Repository.ClearAll: %w", err)
	}
	if err := r.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("repo.Repository.ClearAll: %w", err)
	}
	return nil
}

// newUUIDv7 returns a time-ordered UUID, falling back to a random v4 if the
// clock-based generator fails.
func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// requireID rejects records that could not be found again after saving.
func requireID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s id is required", domain.ErrValidation, kind)
	}
	return nil
}
