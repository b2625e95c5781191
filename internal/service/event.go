package service

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
	"github.com/alvesgeorge/PlanerTrip/internal/stats"
)

// EventService implements business logic for calendar events.
type EventService struct {
	trips  repo.TripRepo
	events repo.EventRepo
}

// NewEventService constructs an EventService backed by the provided repos.
func NewEventService(trips repo.TripRepo, events repo.EventRepo) *EventService {
	return &EventService{trips: trips, events: events}
}

// Create validates the event, verifies the parent trip exists, then persists
// it as not completed.
func (s *EventService) Create(ctx context.Context, tripID string, event domain.EventItem) (domain.EventItem, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return domain.EventItem{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	event, err := normalizeEvent(event)
	if err != nil {
		return domain.EventItem{}, err
	}
	event.ID = s.events.GenerateID()
	event.Completed = false
	event.CreatedAt = domain.Now()
	if err := s.events.SaveEvent(ctx, tripID, event); err != nil {
		return domain.EventItem{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return event, nil
}

// GetByID returns a single event, scoped to the trip.
func (s *EventService) GetByID(ctx context.Context, tripID, id string) (domain.EventItem, error) {
	event, err := s.events.GetEvent(ctx, tripID, id)
	if err != nil {
		return domain.EventItem{}, fmt.Errorf("service.EventService.GetByID: %w", err)
	}
	return event, nil
}

// List returns the trip's events in stored order. A non-empty date keeps only
// the events on that calendar day.
func (s *EventService) List(ctx context.Context, tripID, date string) ([]domain.EventItem, error) {
	events, err := s.events.ListEvents(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.EventService.List: %w", err)
	}
	return stats.FilterEventsByDate(events, date), nil
}

// Update validates and replaces an existing event, keeping its creation time.
func (s *EventService) Update(ctx context.Context, tripID string, event domain.EventItem) (domain.EventItem, error) {
	event, err := normalizeEvent(event)
	if err != nil {
		return domain.EventItem{}, err
	}
	existing, err := s.events.GetEvent(ctx, tripID, event.ID)
	if err != nil {
		return domain.EventItem{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	event.CreatedAt = existing.CreatedAt
	if err := s.events.SaveEvent(ctx, tripID, event); err != nil {
		return domain.EventItem{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	return event, nil
}

// Toggle flips the event's completion flag.
func (s *EventService) Toggle(ctx context.Context, tripID, id string) (domain.EventItem, error) {
	event, err := s.events.ToggleEventCompleted(ctx, tripID, id)
	if err != nil {
		return domain.EventItem{}, fmt.Errorf("service.EventService.Toggle: %w", err)
	}
	return event, nil
}

// Delete removes an event. Removing an unknown event is not an error.
func (s *EventService) Delete(ctx context.Context, tripID, id string) error {
	if err := s.events.DeleteEvent(ctx, tripID, id); err != nil {
		return fmt.Errorf("service.EventService.Delete: %w", err)
	}
	return nil
}

// Progress counts the trip's completed events.
func (s *EventService) Progress(ctx context.Context, tripID string) (stats.EventStats, error) {
	events, err := s.events.ListEvents(ctx, tripID)
	if err != nil {
		return stats.EventStats{}, fmt.Errorf("service.EventService.Progress: %w", err)
	}
	return stats.EventProgress(events), nil
}

// normalizeEvent enforces business rules common to both Create and Update.
//   - Title and date must be non-empty.
//   - Times must be HH:mm and the end must not precede the start.
//   - Category defaults to "Evento"; priority defaults to medium.
func normalizeEvent(e domain.EventItem) (domain.EventItem, error) {
	if err := required("title", e.Title); err != nil {
		return e, err
	}
	if err := required("date", e.Date); err != nil {
		return e, err
	}
	if err := validateClockRange("start_time", e.StartTime, "end_time", e.EndTime); err != nil {
		return e, err
	}
	if e.Category == "" {
		e.Category = domain.DefaultEventCategory
	}
	priority, err := normalizePriority(e.Priority)
	if err != nil {
		return e, err
	}
	e.Priority = priority
	return e, nil
}
