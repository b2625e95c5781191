package domain

import "github.com/shopspring/decimal"

// BudgetItem is the detailed budget of a trip. There is at most one per trip.
type BudgetItem struct {
	TotalBudget decimal.Decimal            `json:"totalBudget"`
	Categories  map[string]decimal.Decimal `json:"categories,omitempty"`
	Notes       string                     `json:"notes,omitempty"`
	LastUpdated Timestamp                  `json:"lastUpdated"`
}
