package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
	"github.com/alvesgeorge/PlanerTrip/internal/stats"
)

// Budget is a trip's budget amount together with its optional detailed
// breakdown.
type Budget struct {
	Amount decimal.Decimal    `json:"amount"`
	Item   *domain.BudgetItem `json:"item,omitempty"`
}

// BudgetService implements business logic for trip budgets.
type BudgetService struct {
	trips    repo.TripRepo
	budgets  repo.BudgetRepo
	expenses repo.ExpenseRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, budgets repo.BudgetRepo, expenses repo.ExpenseRepo) *BudgetService {
	return &BudgetService{trips: trips, budgets: budgets, expenses: expenses}
}

// Get returns the trip's budget. A trip without a saved budget has amount zero
// and no detailed item.
func (s *BudgetService) Get(ctx context.Context, tripID string) (Budget, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return Budget{}, fmt.Errorf("service.BudgetService.Get: %w", err)
	}
	amount, err := s.budgets.GetBudget(ctx, tripID)
	if err != nil {
		return Budget{}, fmt.Errorf("service.BudgetService.Get: %w", err)
	}
	b := Budget{Amount: amount}
	item, err := s.budgets.GetBudgetItem(ctx, tripID)
	switch {
	case err == nil:
		b.Item = &item
	case !errors.Is(err, domain.ErrNotFound):
		return Budget{}, fmt.Errorf("service.BudgetService.Get: %w", err)
	}
	return b, nil
}

// Set stores the budget amount and, when given, the detailed breakdown.
// The breakdown's total is forced to the amount and its update time stamped.
// Without a new breakdown, a stored one keeps its categories and notes and
// takes the new total.
func (s *BudgetService) Set(ctx context.Context, tripID string, amount decimal.Decimal, item *domain.BudgetItem) (Budget, error) {
	if amount.IsNegative() {
		return Budget{}, validationError("budget must not be negative")
	}
	if item != nil {
		for category, v := range item.Categories {
			if v.IsNegative() {
				return Budget{}, validationError("category %s must not be negative", category)
			}
		}
	}
	if err := s.budgets.SaveBudget(ctx, tripID, amount); err != nil {
		return Budget{}, fmt.Errorf("service.BudgetService.Set: %w", err)
	}
	b := Budget{Amount: amount}
	if item == nil {
		existing, err := s.budgets.GetBudgetItem(ctx, tripID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return b, nil
		case err != nil:
			return Budget{}, fmt.Errorf("service.BudgetService.Set: %w", err)
		}
		item = &existing
	}
	stored := *item
	stored.TotalBudget = amount
	stored.LastUpdated = domain.Now()
	if err := s.budgets.SaveBudgetItem(ctx, tripID, stored); err != nil {
		return Budget{}, fmt.Errorf("service.BudgetService.Set: %w", err)
	}
	b.Item = &stored
	return b, nil
}

// Status compares the trip's expenses with its budget.
func (s *BudgetService) Status(ctx context.Context, tripID string) (stats.BudgetStatus, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return stats.BudgetStatus{}, fmt.Errorf("service.BudgetService.Status: %w", err)
	}
	amount, err := s.budgets.GetBudget(ctx, tripID)
	if err != nil {
		return stats.BudgetStatus{}, fmt.Errorf("service.BudgetService.Status: %w", err)
	}
	expenses, err := s.expenses.ListExpenses(ctx, tripID)
	if err != nil {
		return stats.BudgetStatus{}, fmt.Errorf("service.BudgetService.Status: %w", err)
	}
	return stats.Budget(amount, expenses), nil
}
