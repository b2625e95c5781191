package repo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/codec"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// GetBudget returns the trip's budget amount. A trip without one, or with an
// unreadable value, has a budget of zero.
func (r *Repository) GetBudget(ctx context.Context, tripID string) (decimal.Decimal, error) {
	raw, ok, err := r.store.Get(ctx, budgetKey(tripID))
	if err != nil {
		return decimal.Zero, fmt.Errorf("repo.Repository.GetBudget: %w", err)
	}
	if !ok {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		r.log.Warn("unreadable budget value", "key", budgetKey(tripID), "error", err)
		return decimal.Zero, nil
	}
	return amount, nil
}

// SaveBudget stores the trip's budget amount as a plain number.
func (r *Repository) SaveBudget(ctx context.Context, tripID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("repo.Repository.SaveBudget: %w: budget must not be negative", domain.ErrValidation)
	}
	key := budgetKey(tripID)
	unlock := r.locks.lock(key)
	defer unlock()

	if err := r.requireTrip(ctx, tripID); err != nil {
		return fmt.Errorf("repo.Repository.SaveBudget: %w", err)
	}
	if err := r.store.Set(ctx, key, amount.String()); err != nil {
		return fmt.Errorf("repo.Repository.SaveBudget: %w", err)
	}
	return nil
}

// GetBudgetItem returns the trip's detailed budget, or domain.ErrNotFound.
func (r *Repository) GetBudgetItem(ctx context.Context, tripID string) (domain.BudgetItem, error) {
	raw, ok, err := r.store.Get(ctx, budgetItemKey(tripID))
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("repo.Repository.GetBudgetItem: %w", err)
	}
	if !ok {
		return domain.BudgetItem{}, fmt.Errorf("repo.Repository.GetBudgetItem: %w", domain.ErrNotFound)
	}
	item, err := codec.Decode[domain.BudgetItem](raw)
	if err != nil {
		r.log.Warn("unreadable budget item", "key", budgetItemKey(tripID), "error", err)
		return domain.BudgetItem{}, fmt.Errorf("repo.Repository.GetBudgetItem: %w", domain.ErrNotFound)
	}
	return item, nil
}

// SaveBudgetItem replaces the trip's detailed budget.
func (r *Repository) SaveBudgetItem(ctx context.Context, tripID string, item domain.BudgetItem) error {
	if item.TotalBudget.IsNegative() {
		return fmt.Errorf("repo.Repository.SaveBudgetItem: %w: total budget must not be negative", domain.ErrValidation)
	}
	for category, amount := range item.Categories {
		if amount.IsNegative() {
			return fmt.Errorf("repo.Repository.SaveBudgetItem: %w: category %q must not be negative", domain.ErrValidation, category)
		}
	}
	key := budgetItemKey(tripID)
	unlock := r.locks.lock(key)
	defer unlock()

	if err := r.requireTrip(ctx, tripID); err != nil {
		return fmt.Errorf("repo.Repository.SaveBudgetItem: %w", err)
	}
	blob, err := codec.Encode(item)
	if err != nil {
		return fmt.Errorf("repo.Repository.SaveBudgetItem: %w", err)
	}
	if err := r.store.Set(ctx, key, blob); err != nil {
		return fmt.Errorf("repo.Repository.SaveBudgetItem: %w", err)
	}
	return nil
}

// requireTrip must be called with the partition key locked, like
// collection.checkParent.
func (r *Repository) requireTrip(ctx context.Context, tripID string) error {
	if _, err := r.trips().get(ctx, tripID); err != nil {
		return fmt.Errorf("trip %s: %w", tripID, err)
	}
	return nil
}
