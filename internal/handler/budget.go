package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// BudgetRequest is the body of PUT /trips/{tripId}/budget. Categories and
// notes are optional; when present they are stored as the detailed budget.
type BudgetRequest struct {
	Amount     decimal.Decimal            `json:"amount" validate:"gte=0"`
	Categories map[string]decimal.Decimal `json:"categories" validate:"omitempty,dive,gte=0"`
	Notes      string                     `json:"notes"`
}

// GetBudget handles GET /trips/{tripId}/budget.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	b, err := s.budgets.Get(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// SetBudget handles PUT /trips/{tripId}/budget.
func (s *Server) SetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req BudgetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var item *domain.BudgetItem
	if len(req.Categories) > 0 || req.Notes != "" {
		item = &domain.BudgetItem{Categories: req.Categories, Notes: req.Notes}
	}
	b, err := s.budgets.Set(r.Context(), tripID, req.Amount, item)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// GetBudgetStatus handles GET /trips/{tripId}/budget/status.
func (s *Server) GetBudgetStatus(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	st, err := s.budgets.Status(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}
