package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/alvesgeorge/PlanerTrip/internal/codec"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func (r *Repository) trips() collection[domain.Trip] {
	return collection[domain.Trip]{r: r, key: keyTrips, fallback: r.legacyTrips}
}

// legacyTrips reads the pre-JSON trip list. It only applies until the first
// trip is saved: that write stores the structured list, legacy trips included.
func (r *Repository) legacyTrips(ctx context.Context) ([]domain.Trip, error) {
	blob, ok, err := r.store.Get(ctx, keyLegacyTrips)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Trip{}, nil
	}
	trips, skipped := codec.DecodeLegacyTrips(blob)
	if skipped > 0 {
		r.log.Warn("skipped undecodable legacy trips", "key", keyLegacyTrips, "skipped", skipped)
	}
	return trips, nil
}

// ListTrips returns every trip in stored order. It never returns nil.
func (r *Repository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	trips, err := r.trips().list(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Repository.ListTrips: %w", err)
	}
	return trips, nil
}

// GetTrip returns the trip with id, or domain.ErrNotFound.
func (r *Repository) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	t, err := r.trips().get(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.Repository.GetTrip: %w", err)
	}
	return t, nil
}

// SaveTrip inserts the trip or replaces the stored trip with the same ID,
// keeping its position in the list.
func (r *Repository) SaveTrip(ctx context.Context, t domain.Trip) error {
	if err := requireID("trip", t.ID); err != nil {
		return fmt.Errorf("repo.Repository.SaveTrip: %w", err)
	}
	if strings.HasPrefix(t.ID, reservedTripIDPrefix) {
		return fmt.Errorf("repo.Repository.SaveTrip: %w: trip id must not start with %q", domain.ErrValidation, reservedTripIDPrefix)
	}
	if t.Budget != nil && t.Budget.IsNegative() {
		return fmt.Errorf("repo.Repository.SaveTrip: %w: budget must not be negative", domain.ErrValidation)
	}
	if err := r.trips().save(ctx, t); err != nil {
		return fmt.Errorf("repo.Repository.SaveTrip: %w", err)
	}
	return nil
}

// DeleteTrip removes the trip and every partition keyed by its ID, and clears
// the current trip pointer if it referenced the trip. Deleting an unknown ID
// touches nothing and is not an error.
func (r *Repository) DeleteTrip(ctx context.Context, id string) error {
	// Trips list first, then the partitions in fixed order. Child writes only
	// take their own partition lock, so this order cannot deadlock.
	unlock := r.locks.lockAll(append([]string{keyTrips}, partitionKeys(id)...)...)
	defer unlock()

	trips, err := r.trips().list(ctx)
	if err != nil {
		return fmt.Errorf("repo.Repository.DeleteTrip: %w", err)
	}
	kept := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return nil
	}

	// Partitions go before the list entry: a failed cascade leaves the trip
	// in place so the delete can be retried.
	if err := r.store.Delete(ctx, partitionKeys(id)...); err != nil {
		return fmt.Errorf("repo.Repository.DeleteTrip: cascade: %w", err)
	}
	if err := r.trips().write(ctx, kept); err != nil {
		return fmt.Errorf("repo.Repository.DeleteTrip: %w", err)
	}

	current, ok, err := r.store.Get(ctx, keyCurrentTrip)
	if err != nil {
		return fmt.Errorf("repo.Repository.DeleteTrip: %w", err)
	}
	if ok && current == id {
		if err := r.store.Delete(ctx, keyCurrentTrip); err != nil {
			return fmt.Errorf("repo.Repository.DeleteTrip: clear current trip: %w", err)
		}
	}

	r.log.Info("trip deleted", "trip_id", id)
	return nil
}
