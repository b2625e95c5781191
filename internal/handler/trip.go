package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// TripRequest is the body of POST /trips and PUT /trips/{tripId}.
type TripRequest struct {
	Name         string           `json:"name" validate:"required"`
	Destination  string           `json:"destination" validate:"required"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	Budget       *decimal.Decimal `json:"budget" validate:"omitempty,gte=0"`
	Notes        string           `json:"notes"`
	SelectedCity *domain.City     `json:"selectedCity"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip("", req))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?q= search plus ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var (
		query       string
		page, limit *int
	)
	if !queryParam(w, r, "q", &query) || !queryParam(w, r, "page", &page) || !queryParam(w, r, "limit", &limit) {
		return
	}

	trips, err := s.trips.List(r.Context(), query)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	params := domain.NewPaginationParams(page, limit)
	writeJSON(w, http.StatusOK, TripList{
		Data: domain.Paginate(trips, params),
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(trips),
		},
	})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req TripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := s.trips.Update(r.Context(), requestToTrip(id, req))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripId}. Deleting an unknown trip is
// not an error.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTripStats handles GET /trips/stats.
func (s *Server) GetTripStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.trips.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// requestToTrip builds a domain.Trip from the request, using the path id on update.
func requestToTrip(id string, req TripRequest) domain.Trip {
	return domain.Trip{
		ID:           id,
		Name:         req.Name,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Budget:       req.Budget,
		Notes:        req.Notes,
		SelectedCity: req.SelectedCity,
	}
}
