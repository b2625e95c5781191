package repo

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func (r *Repository) expenses(tripID string) collection[domain.ExpenseItem] {
	return collection[domain.ExpenseItem]{r: r, key: expensesKey(tripID), tripID: tripID}
}

// ListExpenses returns the trip's expenses in stored order.
func (r *Repository) ListExpenses(ctx context.Context, tripID string) ([]domain.ExpenseItem, error) {
	expenses, err := r.expenses(tripID).list(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Repository.ListExpenses: %w", err)
	}
	return expenses, nil
}

// GetExpense returns one expense of the trip, or domain.ErrNotFound.
func (r *Repository) GetExpense(ctx context.Context, tripID, id string) (domain.ExpenseItem, error) {
	e, err := r.expenses(tripID).get(ctx, id)
	if err != nil {
		return domain.ExpenseItem{}, fmt.Errorf("repo.Repository.GetExpense: %w", err)
	}
	return e, nil
}

// SaveExpense upserts the expense into the trip's partition.
func (r *Repository) SaveExpense(ctx context.Context, tripID string, e domain.ExpenseItem) error {
	if err := requireID("expense", e.ID); err != nil {
		return fmt.Errorf("repo.Repository.SaveExpense: %w", err)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("repo.Repository.SaveExpense: %w: amount must not be negative", domain.ErrValidation)
	}
	if err := r.expenses(tripID).save(ctx, e); err != nil {
		return fmt.Errorf("repo.Repository.SaveExpense: %w", err)
	}
	return nil
}

// DeleteExpense removes the expense; an unknown ID is a no-op.
func (r *Repository) DeleteExpense(ctx context.Context, tripID, id string) error {
	if err := r.expenses(tripID).delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Repository.DeleteExpense: %w", err)
	}
	return nil
}
