package repo

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/codec"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func (r *Repository) places(tripID string) collection[domain.PlaceItem] {
	return collection[domain.PlaceItem]{
		r:      r,
		key:    placesKey(tripID),
		tripID: tripID,
		legacy: codec.DecodeLegacyPlaces,
	}
}

// ListPlaces returns the trip's itinerary places in stored order. A partition
// still in the old "|"-delimited format is read as such.
func (r *Repository) ListPlaces(ctx context.Context, tripID string) ([]domain.PlaceItem, error) {
	places, err := r.places(tripID).list(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Repository.ListPlaces: %w", err)
	}
	return places, nil
}

// GetPlace returns one place of the trip, or domain.ErrNotFound.
func (r *Repository) GetPlace(ctx context.Context, tripID, id string) (domain.PlaceItem, error) {
	p, err := r.places(tripID).get(ctx, id)
	if err != nil {
		return domain.PlaceItem{}, fmt.Errorf("repo.Repository.GetPlace: %w", err)
	}
	return p, nil
}

// SavePlace upserts the place into the trip's partition.
// Returns domain.ErrNotFound if the trip does not exist.
func (r *Repository) SavePlace(ctx context.Context, tripID string, p domain.PlaceItem) error {
	if err := requireID("place", p.ID); err != nil {
		return fmt.Errorf("repo.Repository.SavePlace: %w", err)
	}
	if p.Duration < 0 {
		return fmt.Errorf("repo.Repository.SavePlace: %w: duration must not be negative", domain.ErrValidation)
	}
	if p.Cost.IsNegative() {
		return fmt.Errorf("repo.Repository.SavePlace: %w: cost must not be negative", domain.ErrValidation)
	}
	if err := r.places(tripID).save(ctx, p); err != nil {
		return fmt.Errorf("repo.Repository.SavePlace: %w", err)
	}
	return nil
}

// DeletePlace removes the place; an unknown ID is a no-op.
func (r *Repository) DeletePlace(ctx context.Context, tripID, id string) error {
	if err := r.places(tripID).delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Repository.DeletePlace: %w", err)
	}
	return nil
}
