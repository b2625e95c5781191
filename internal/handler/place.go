package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

// PlaceRequest is the body of the place create and update endpoints.
type PlaceRequest struct {
	Name          string          `json:"name" validate:"required"`
	Address       string          `json:"address"`
	Day           string          `json:"day"`
	Category      string          `json:"category"`
	Duration      float64         `json:"duration" validate:"gte=0"`
	PreferredTime string          `json:"preferredTime" validate:"omitempty,clock"`
	Cost          decimal.Decimal `json:"cost" validate:"gte=0"`
	Description   string          `json:"description"`
	Priority      domain.Priority `json:"priority" validate:"omitempty,priority"`
}

// CreatePlace handles POST /trips/{tripId}/places.
func (s *Server) CreatePlace(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req PlaceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.places.Create(r.Context(), tripID, requestToPlace("", req))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListPlaces handles GET /trips/{tripId}/places.
// Supports ?day= (substring) and ?category= (exact); "All" and "Todos" match everything.
// ?sort=schedule orders by day, then preferred time.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var filter service.PlaceFilter
	if !queryParam(w, r, "day", &filter.Day) || !queryParam(w, r, "category", &filter.Category) ||
		!queryParam(w, r, "sort", &filter.Sort) {
		return
	}

	places, err := s.places.List(r.Context(), tripID, filter)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(places))
}

// GetPlace handles GET /trips/{tripId}/places/{placeId}.
func (s *Server) GetPlace(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	id, ok := pathParam(w, r, "placeId")
	if !ok {
		return
	}
	place, err := s.places.GetByID(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "place not found")
		return
	}
	writeJSON(w, http.StatusOK, place)
}

// UpdatePlace handles PUT /trips/{tripId}/places/{placeId}.
func (s *Server) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	id, ok := pathParam(w, r, "placeId")
	if !ok {
		return
	}
	var req PlaceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := s.places.Update(r.Context(), tripID, requestToPlace(id, req))
	if err != nil {
		s.writeServiceError(w, r, err, "place not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePlace handles DELETE /trips/{tripId}/places/{placeId}.
func (s *Server) DeletePlace(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	id, ok := pathParam(w, r, "placeId")
	if !ok {
		return
	}
	if err := s.places.Delete(r.Context(), tripID, id); err != nil {
		s.writeServiceError(w, r, err, "place not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetItineraryStats handles GET /trips/{tripId}/itinerary/stats.
func (s *Server) GetItineraryStats(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	st, err := s.places.ItineraryStats(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func requestToPlace(id string, req PlaceRequest) domain.PlaceItem {
	return domain.PlaceItem{
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		Day:           req.Day,
		Category:      req.Category,
		Duration:      req.Duration,
		PreferredTime: req.PreferredTime,
		Cost:          req.Cost,
		Description:   req.Description,
		Priority:      req.Priority,
	}
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
