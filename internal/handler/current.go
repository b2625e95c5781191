package handler

import "net/http"

// CurrentTripRequest is the body of PUT /current-trip.
type CurrentTripRequest struct {
	TripID string `json:"tripId" validate:"required"`
}

// GetCurrentTrip handles GET /current-trip. It answers 404 when no trip is
// selected or the selection points at a deleted trip.
func (s *Server) GetCurrentTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Current(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "no current trip")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// SetCurrentTrip handles PUT /current-trip.
func (s *Server) SetCurrentTrip(w http.ResponseWriter, r *http.Request) {
	var req CurrentTripRequest
	if !decodeBody(w, r, &req) {
		return
	}
	trip, err := s.trips.SetCurrent(r.Context(), req.TripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ClearCurrentTrip handles DELETE /current-trip.
func (s *Server) ClearCurrentTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.ClearCurrent(r.Context()); err != nil {
		s.writeServiceError(w, r, err, "no current trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
