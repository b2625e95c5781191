package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
	"github.com/alvesgeorge/PlanerTrip/internal/stats"
)

// ExpenseService implements business logic for expenses.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Create validates the expense, verifies the parent trip exists, then persists.
func (s *ExpenseService) Create(ctx context.Context, tripID string, expense domain.ExpenseItem) (domain.ExpenseItem, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return domain.ExpenseItem{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	expense, err := normalizeExpense(expense)
	if err != nil {
		return domain.ExpenseItem{}, err
	}
	expense.ID = s.expenses.GenerateID()
	expense.CreatedAt = domain.Now()
	if err := s.expenses.SaveExpense(ctx, tripID, expense); err != nil {
		return domain.ExpenseItem{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return expense, nil
}

// GetByID returns a single expense, scoped to the trip.
func (s *ExpenseService) GetByID(ctx context.Context, tripID, id string) (domain.ExpenseItem, error) {
	expense, err := s.expenses.GetExpense(ctx, tripID, id)
	if err != nil {
		return domain.ExpenseItem{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return expense, nil
}

// List returns the trip's expenses in category, or all of them when category
// is empty, "All" or "Todos".
func (s *ExpenseService) List(ctx context.Context, tripID, category string) ([]domain.ExpenseItem, error) {
	expenses, err := s.expenses.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	return stats.FilterExpensesByCategory(expenses, category), nil
}

// Update validates and replaces an existing expense, keeping its creation time.
func (s *ExpenseService) Update(ctx context.Context, tripID string, expense domain.ExpenseItem) (domain.ExpenseItem, error) {
	expense, err := normalizeExpense(expense)
	if err != nil {
		return domain.ExpenseItem{}, err
	}
	existing, err := s.expenses.GetExpense(ctx, tripID, expense.ID)
	if err != nil {
		return domain.ExpenseItem{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	expense.CreatedAt = existing.CreatedAt
	if err := s.expenses.SaveExpense(ctx, tripID, expense); err != nil {
		return domain.ExpenseItem{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return expense, nil
}

// Delete removes an expense. Removing an unknown expense is not an error.
func (s *ExpenseService) Delete(ctx context.Context, tripID, id string) error {
	if err := s.expenses.DeleteExpense(ctx, tripID, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// ByCategory totals the trip's expenses per category.
func (s *ExpenseService) ByCategory(ctx context.Context, tripID string) (map[string]decimal.Decimal, error) {
	expenses, err := s.expenses.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ByCategory: %w", err)
	}
	return stats.ExpensesByCategory(expenses), nil
}

// normalizeExpense enforces business rules common to both Create and Update.
//   - Title and category must be non-empty.
//   - Amount must be strictly positive.
//   - Payment method defaults to cash.
func normalizeExpense(e domain.ExpenseItem) (domain.ExpenseItem, error) {
	if err := required("title", e.Title); err != nil {
		return e, err
	}
	if !e.Amount.IsPositive() {
		return e, validationError("amount must be greater than zero")
	}
	if err := required("category", e.Category); err != nil {
		return e, err
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = domain.DefaultPaymentMethod
	}
	return e, nil
}
