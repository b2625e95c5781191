package repo

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func (r *Repository) events(tripID string) collection[domain.EventItem] {
	return collection[domain.EventItem]{r: r, key: eventsKey(tripID), tripID: tripID}
}

// ListEvents returns the trip's calendar events in stored order.
func (r *Repository) ListEvents(ctx context.Context, tripID string) ([]domain.EventItem, error) {
	events, err := r.events(tripID).list(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Repository.ListEvents: %w", err)
	}
	return events, nil
}

// GetEvent returns one event of the trip, or domain.ErrNotFound.
func (r *Repository) GetEvent(ctx context.Context, tripID, id string) (domain.EventItem, error) {
	e, err := r.events(tripID).get(ctx, id)
	if err != nil {
		return domain.EventItem{}, fmt.Errorf("repo.Repository.GetEvent: %w", err)
	}
	return e, nil
}

// SaveEvent upserts the event into the trip's partition.
func (r *Repository) SaveEvent(ctx context.Context, tripID string, e domain.EventItem) error {
	if err := requireID("event", e.ID); err != nil {
		return fmt.Errorf("repo.Repository.SaveEvent: %w", err)
	}
	if err := r.events(tripID).save(ctx, e); err != nil {
		return fmt.Errorf("repo.Repository.SaveEvent: %w", err)
	}
	return nil
}

// ToggleEventCompleted flips the event's completion flag atomically and
// returns the updated event.
func (r *Repository) ToggleEventCompleted(ctx context.Context, tripID, id string) (domain.EventItem, error) {
	e, err := r.events(tripID).modify(ctx, id, func(e *domain.EventItem) {
		e.Completed = !e.Completed
	})
	if err != nil {
		return domain.EventItem{}, fmt.Errorf("repo.Repository.ToggleEventCompleted: %w", err)
	}
	return e, nil
}

// DeleteEvent removes the event; an unknown ID is a no-op.
func (r *Repository) DeleteEvent(ctx context.Context, tripID, id string) error {
	if err := r.events(tripID).delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Repository.DeleteEvent: %w", err)
	}
	return nil
}
