package domain

import "github.com/shopspring/decimal"

// Snapshot is the full backup produced by the repository's Export: every trip
// together with all of its partitions. There is no restore counterpart.
type Snapshot struct {
	ExportedAt Timestamp    `json:"exportedAt"`
	Trips      []TripExport `json:"trips"`
}

// TripExport nests one trip's partitions under the trip record.
// Slices are never nil so the JSON always carries arrays.
type TripExport struct {
	Trip       Trip            `json:"trip"`
	Places     []PlaceItem     `json:"places"`
	Events     []EventItem     `json:"events"`
	Expenses   []ExpenseItem   `json:"expenses"`
	Tasks      []TaskItem      `json:"tasks"`
	Budget     decimal.Decimal `json:"budget"`
	BudgetItem *BudgetItem     `json:"budgetItem,omitempty"`
}

// ExportRow is a single row in the flat (CSV) export.
// It is a denormalized view: one row per child record, with trip fields
// repeated. Trips with no children yield one row with an empty Kind.
type ExportRow struct {
	// Trip fields, repeated for every child on the trip.
	TripID          string
	TripName        string
	TripDestination string
	TripStartDate   string
	TripEndDate     string

	// Child fields, zero values when the trip has no children.
	Kind   string // "place", "event", "expense" or "task"
	ItemID string
	Title  string
	Day    string // day label for places, date for events, expenses and tasks
	Amount string // cost or amount; empty for events and tasks
}
