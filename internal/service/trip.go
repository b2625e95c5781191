// Package service contains the business logic of the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage details live here: services depend on repo interfaces, not on
// the key-value layout.
package service

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
	"github.com/alvesgeorge/PlanerTrip/internal/stats"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates the trip, assigns a new ID and creation time, and persists it.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	trip.ID = s.repo.GenerateID()
	trip.CreatedAt = domain.Now()
	if err := s.repo.SaveTrip(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns the trips matching query (name, destination or notes, ignoring
// case). An empty query returns every trip.
func (s *TripService) List(ctx context.Context, query string) ([]domain.Trip, error) {
	trips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return stats.SearchTrips(trips, query), nil
}

// Update validates and replaces an existing trip. The creation time is kept.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	existing, err := s.repo.GetTrip(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip.CreatedAt = existing.CreatedAt
	if err := s.repo.SaveTrip(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return trip, nil
}

// Delete removes a trip and everything planned under it.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteTrip(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Stats summarizes all trips.
func (s *TripService) Stats(ctx context.Context) (stats.TripStats, error) {
	trips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return stats.TripStats{}, fmt.Errorf("service.TripService.Stats: %w", err)
	}
	return stats.Trips(trips), nil
}

// Current returns the selected trip, or domain.ErrNotFound when none is.
func (s *TripService) Current(ctx context.Context) (domain.Trip, error) {
	trip, err := s.repo.CurrentTrip(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Current: %w", err)
	}
	return trip, nil
}

// SetCurrent selects the trip with id as the current trip.
func (s *TripService) SetCurrent(ctx context.Context, id string) (domain.Trip, error) {
	if err := required("trip_id", id); err != nil {
		return domain.Trip{}, err
	}
	if err := s.repo.SetCurrentTrip(ctx, id); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetCurrent: %w", err)
	}
	return s.GetByID(ctx, id)
}

// ClearCurrent unselects the current trip.
func (s *TripService) ClearCurrent(ctx context.Context) error {
	if err := s.repo.ClearCurrentTrip(ctx); err != nil {
		return fmt.Errorf("service.TripService.ClearCurrent: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name and destination must be non-empty.
//   - Budget, if set, must not be negative.
//   - When both dates parse, the end must not be before the start.
func validateTrip(trip domain.Trip) error {
	if err := required("name", trip.Name); err != nil {
		return err
	}
	if err := required("destination", trip.Destination); err != nil {
		return err
	}
	if trip.Budget != nil && trip.Budget.IsNegative() {
		return validationError("budget must not be negative")
	}
	start, okStart := domain.ParseDate(trip.StartDate)
	end, okEnd := domain.ParseDate(trip.EndDate)
	if okStart && okEnd && end.Before(start) {
		return validationError("end_date must not be before start_date")
	}
	return nil
}
