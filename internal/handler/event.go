package handler

import (
	"net/http"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// EventRequest is the body of the event create and update endpoints.
// Completed is ignored on create.
type EventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" validate:"required"`
	StartTime   string          `json:"startTime" validate:"omitempty,clock"`
	EndTime     string          `json:"endTime" validate:"omitempty,clock"`
	Location    string          `json:"location"`
	Category    string          `json:"category"`
	Priority    domain.Priority `json:"priority" validate:"omitempty,priority"`
	Completed   bool            `json:"completed"`
}

// CreateEvent handles POST /trips/{tripId}/events.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req EventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.events.Create(r.Context(), tripID, requestToEvent("", req))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListEvents handles GET /trips/{tripId}/events.
// ?date= keeps the events of one calendar day (exact match).
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var date string
	if !queryParam(w, r, "date", &date) {
		return
	}
	events, err := s.events.List(r.Context(), tripID, date)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(events))
}

// GetEvent handles GET /trips/{tripId}/events/{eventId}.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := eventPath(w, r)
	if !ok {
		return
	}
	event, err := s.events.GetByID(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// UpdateEvent handles PUT /trips/{tripId}/events/{eventId}.
func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := eventPath(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := s.events.Update(r.Context(), tripID, requestToEvent(id, req))
	if err != nil {
		s.writeServiceError(w, r, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ToggleEvent handles POST /trips/{tripId}/events/{eventId}/toggle.
func (s *Server) ToggleEvent(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := eventPath(w, r)
	if !ok {
		return
	}
	event, err := s.events.Toggle(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /trips/{tripId}/events/{eventId}.
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := eventPath(w, r)
	if !ok {
		return
	}
	if err := s.events.Delete(r.Context(), tripID, id); err != nil {
		s.writeServiceError(w, r, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEventProgress handles GET /trips/{tripId}/events/progress.
func (s *Server) GetEventProgress(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	p, err := s.events.Progress(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func eventPath(w http.ResponseWriter, r *http.Request) (tripID, id string, ok bool) {
	if tripID, ok = pathParam(w, r, "tripId"); !ok {
		return "", "", false
	}
	if id, ok = pathParam(w, r, "eventId"); !ok {
		return "", "", false
	}
	return tripID, id, true
}

func requestToEvent(id string, req EventRequest) domain.EventItem {
	return domain.EventItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Category:    req.Category,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
}
