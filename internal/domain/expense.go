package domain

import "github.com/shopspring/decimal"

// DefaultPaymentMethod is recorded when an expense has no payment method.
const DefaultPaymentMethod = "Dinheiro"

// ExpenseItem is money spent during a trip.
type ExpenseItem struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     Timestamp       `json:"createdAt"`
}

// RecordID implements the repository's record constraint.
func (e ExpenseItem) RecordID() string { return e.ID }
