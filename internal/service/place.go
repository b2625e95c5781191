package service

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
	"github.com/alvesgeorge/PlanerTrip/internal/stats"
)

// PlaceSortSchedule orders a listing by day, preferred time and priority.
const PlaceSortSchedule = "schedule"

// PlaceFilter narrows a place listing. Empty fields, "All" and "Todos" match
// everything. Sort is empty (stored order) or PlaceSortSchedule.
type PlaceFilter struct {
	Day      string
	Category string
	Sort     string
}

// PlaceService implements business logic for itinerary places.
// It holds the trips repo because creating a place requires verifying the
// parent trip exists.
type PlaceService struct {
	trips  repo.TripRepo
	places repo.PlaceRepo
}

// NewPlaceService constructs a PlaceService backed by the provided repos.
func NewPlaceService(trips repo.TripRepo, places repo.PlaceRepo) *PlaceService {
	return &PlaceService{trips: trips, places: places}
}

// Create validates the place, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *PlaceService) Create(ctx context.Context, tripID string, place domain.PlaceItem) (domain.PlaceItem, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return domain.PlaceItem{}, fmt.Errorf("service.PlaceService.Create: %w", err)
	}
	place, err := normalizePlace(place)
	if err != nil {
		return domain.PlaceItem{}, err
	}
	place.ID = s.places.GenerateID()
	if err := s.places.SavePlace(ctx, tripID, place); err != nil {
		return domain.PlaceItem{}, fmt.Errorf("service.PlaceService.Create: %w", err)
	}
	return place, nil
}

// GetByID returns a single place, scoped to the trip.
func (s *PlaceService) GetByID(ctx context.Context, tripID, id string) (domain.PlaceItem, error) {
	place, err := s.places.GetPlace(ctx, tripID, id)
	if err != nil {
		return domain.PlaceItem{}, fmt.Errorf("service.PlaceService.GetByID: %w", err)
	}
	return place, nil
}

// List returns the trip's places matching filter, in stored order unless
// filter.Sort asks for the schedule order.
func (s *PlaceService) List(ctx context.Context, tripID string, filter PlaceFilter) ([]domain.PlaceItem, error) {
	if filter.Sort != "" && filter.Sort != PlaceSortSchedule {
		return nil, validationError("sort must be %s", PlaceSortSchedule)
	}
	places, err := s.places.ListPlaces(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PlaceService.List: %w", err)
	}
	places = stats.FilterPlacesByDay(places, filter.Day)
	places = stats.FilterPlacesByCategory(places, filter.Category)
	if filter.Sort == PlaceSortSchedule {
		places = stats.SortPlaces(places)
	}
	return places, nil
}

// Update validates and replaces an existing place.
// Returns domain.ErrNotFound if the place does not exist under the trip.
func (s *PlaceService) Update(ctx context.Context, tripID string, place domain.PlaceItem) (domain.PlaceItem, error) {
	place, err := normalizePlace(place)
	if err != nil {
		return domain.PlaceItem{}, err
	}
	if _, err := s.places.GetPlace(ctx, tripID, place.ID); err != nil {
		return domain.PlaceItem{}, fmt.Errorf("service.PlaceService.Update: %w", err)
	}
	if err := s.places.SavePlace(ctx, tripID, place); err != nil {
		return domain.PlaceItem{}, fmt.Errorf("service.PlaceService.Update: %w", err)
	}
	return place, nil
}

// Delete removes a place. Removing an unknown place is not an error.
func (s *PlaceService) Delete(ctx context.Context, tripID, id string) error {
	if err := s.places.DeletePlace(ctx, tripID, id); err != nil {
		return fmt.Errorf("service.PlaceService.Delete: %w", err)
	}
	return nil
}

// ItineraryStats summarizes the trip's places.
func (s *PlaceService) ItineraryStats(ctx context.Context, tripID string) (stats.ItineraryStats, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return stats.ItineraryStats{}, fmt.Errorf("service.PlaceService.ItineraryStats: %w", err)
	}
	places, err := s.places.ListPlaces(ctx, tripID)
	if err != nil {
		return stats.ItineraryStats{}, fmt.Errorf("service.PlaceService.ItineraryStats: %w", err)
	}
	return stats.Itinerary(places), nil
}

// normalizePlace enforces business rules common to both Create and Update.
//   - Name must be non-empty.
//   - Duration and cost must not be negative.
//   - Preferred time, if set, must be HH:mm.
//   - Priority defaults to medium.
func normalizePlace(p domain.PlaceItem) (domain.PlaceItem, error) {
	if err := required("name", p.Name); err != nil {
		return p, err
	}
	if p.Duration < 0 {
		return p, validationError("duration must not be negative")
	}
	if p.Cost.IsNegative() {
		return p, validationError("cost must not be negative")
	}
	if err := validateClockRange("preferred_time", p.PreferredTime, "preferred_time", ""); err != nil {
		return p, err
	}
	priority, err := normalizePriority(p.Priority)
	if err != nil {
		return p, err
	}
	p.Priority = priority
	return p, nil
}
