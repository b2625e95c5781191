package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// SetCurrentTrip points the current trip at id. The trip must exist.
func (r *Repository) SetCurrentTrip(ctx context.Context, id string) error {
	unlock := r.locks.lock(keyTrips)
	defer unlock()

	if _, err := r.trips().get(ctx, id); err != nil {
		return fmt.Errorf("repo.Repository.SetCurrentTrip: %w", err)
	}
	if err := r.store.Set(ctx, keyCurrentTrip, id); err != nil {
		return fmt.Errorf("repo.Repository.SetCurrentTrip: %w", err)
	}
	return nil
}

// CurrentTripID returns the current trip ID. ok is false when no trip was
// selected or the selected trip no longer exists; the first trip is never
// picked implicitly.
func (r *Repository) CurrentTripID(ctx context.Context) (id string, ok bool, err error) {
	id, ok, err = r.store.Get(ctx, keyCurrentTrip)
	if err != nil {
		return "", false, fmt.Errorf("repo.Repository.CurrentTripID: %w", err)
	}
	if !ok || id == "" {
		return "", false, nil
	}
	if _, err := r.trips().get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("repo.Repository.CurrentTripID: %w", err)
	}
	return id, true, nil
}

// CurrentTrip returns the current trip, or domain.ErrNotFound when there is
// none.
func (r *Repository) CurrentTrip(ctx context.Context) (domain.Trip, error) {
	id, ok, err := r.CurrentTripID(ctx)
	if err != nil {
		return domain.Trip{}, err
	}
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.Repository.CurrentTrip: %w", domain.ErrNotFound)
	}
	return r.GetTrip(ctx, id)
}

// ClearCurrentTrip unsets the current trip pointer.
func (r *Repository) ClearCurrentTrip(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyCurrentTrip); err != nil {
		return fmt.Errorf("repo.Repository.ClearCurrentTrip: %w", err)
	}
	return nil
}
