package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// ExpenseRequest is the body of the expense create and update endpoints.
type ExpenseRequest struct {
	Title         string          `json:"title" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	Category      string          `json:"category" validate:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes"`
}

// CreateExpense handles POST /trips/{tripId}/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req ExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.expenses.Create(r.Context(), tripID, requestToExpense("", req))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListExpenses handles GET /trips/{tripId}/expenses.
// Supports ?category= (exact); "All" and "Todos" match everything.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var category string
	if !queryParam(w, r, "category", &category) {
		return
	}

	expenses, err := s.expenses.List(r.Context(), tripID, category)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(expenses))
}

// GetExpensesByCategory handles GET /trips/{tripId}/expenses/by-category.
func (s *Server) GetExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	totals, err := s.expenses.ByCategory(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	if totals == nil {
		totals = map[string]decimal.Decimal{}
	}
	writeJSON(w, http.StatusOK, totals)
}

// GetExpense handles GET /trips/{tripId}/expenses/{expenseId}.
func (s *Server) GetExpense(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := expensePath(w, r)
	if !ok {
		return
	}
	expense, err := s.expenses.GetByID(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

// UpdateExpense handles PUT /trips/{tripId}/expenses/{expenseId}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := expensePath(w, r)
	if !ok {
		return
	}
	var req ExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := s.expenses.Update(r.Context(), tripID, requestToExpense(id, req))
	if err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteExpense handles DELETE /trips/{tripId}/expenses/{expenseId}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := expensePath(w, r)
	if !ok {
		return
	}
	if err := s.expenses.Delete(r.Context(), tripID, id); err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func expensePath(w http.ResponseWriter, r *http.Request) (tripID, id string, ok bool) {
	if tripID, ok = pathParam(w, r, "tripId"); !ok {
		return "", "", false
	}
	if id, ok = pathParam(w, r, "expenseId"); !ok {
		return "", "", false
	}
	return tripID, id, true
}

func requestToExpense(id string, req ExpenseRequest) domain.ExpenseItem {
	return domain.ExpenseItem{
		ID:            id,
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
		Description:   req.Description,
		Notes:         req.Notes,
	}
}
