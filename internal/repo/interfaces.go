package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// IDGenerator hands out IDs for new records.
type IDGenerator interface {
	GenerateID() string
}

// TripRepo defines the persistence operations for trips and the current trip
// pointer. The service layer depends on these interfaces, not on Repository,
// so services can be unit-tested with hand-written mocks.
type TripRepo interface {
	IDGenerator

	// ListTrips returns every trip in stored order.
	ListTrips(ctx context.Context) ([]domain.Trip, error)

	// GetTrip returns domain.ErrNotFound if no trip has that ID.
	GetTrip(ctx context.Context, id string) (domain.Trip, error)

	// SaveTrip inserts or replaces by ID.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes the trip and all of its partitions.
	DeleteTrip(ctx context.Context, id string) error

	SetCurrentTrip(ctx context.Context, id string) error
	CurrentTrip(ctx context.Context) (domain.Trip, error)
	ClearCurrentTrip(ctx context.Context) error
}

// PlaceRepo defines the persistence operations for itinerary places.
type PlaceRepo interface {
	IDGenerator
	ListPlaces(ctx context.Context, tripID string) ([]domain.PlaceItem, error)
	GetPlace(ctx context.Context, tripID, id string) (domain.PlaceItem, error)
	SavePlace(ctx context.Context, tripID string, place domain.PlaceItem) error
	DeletePlace(ctx context.Context, tripID, id string) error
}

// EventRepo defines the persistence operations for calendar events.
type EventRepo interface {
	IDGenerator
	ListEvents(ctx context.Context, tripID string) ([]domain.EventItem, error)
	GetEvent(ctx context.Context, tripID, id string) (domain.EventItem, error)
	SaveEvent(ctx context.Context, tripID string, event domain.EventItem) error
	ToggleEventCompleted(ctx context.Context, tripID, id string) (domain.EventItem, error)
	DeleteEvent(ctx context.Context, tripID, id string) error
}

// ExpenseRepo defines the persistence operations for expenses.
type ExpenseRepo interface {
	IDGenerator
	ListExpenses(ctx context.Context, tripID string) ([]domain.ExpenseItem, error)
	GetExpense(ctx context.Context, tripID, id string) (domain.ExpenseItem, error)
	SaveExpense(ctx context.Context, tripID string, expense domain.ExpenseItem) error
	DeleteExpense(ctx context.Context, tripID, id string) error
}

// TaskRepo defines the persistence operations for tasks.
type TaskRepo interface {
	IDGenerator
	ListTasks(ctx context.Context, tripID string) ([]domain.TaskItem, error)
	GetTask(ctx context.Context, tripID, id string) (domain.TaskItem, error)
	SaveTask(ctx context.Context, tripID string, task domain.TaskItem) error
	ReplaceTasks(ctx context.Context, tripID string, tasks []domain.TaskItem) error
	ToggleTaskCompleted(ctx context.Context, tripID, id string) (domain.TaskItem, error)
	DeleteTask(ctx context.Context, tripID, id string) error
}

// BudgetRepo defines the persistence operations for a trip's budget amount
// and detailed budget.
type BudgetRepo interface {
	// GetBudget returns zero when no budget was saved.
	GetBudget(ctx context.Context, tripID string) (decimal.Decimal, error)
	SaveBudget(ctx context.Context, tripID string, amount decimal.Decimal) error

	// GetBudgetItem returns domain.ErrNotFound when no detailed budget was saved.
	GetBudgetItem(ctx context.Context, tripID string) (domain.BudgetItem, error)
	SaveBudgetItem(ctx context.Context, tripID string, item domain.BudgetItem) error
}

// ExportRepo produces the full backup snapshot.
type ExportRepo interface {
	Export(ctx context.Context) (domain.Snapshot, error)
}

var (
	_ TripRepo    = (*Repository)(nil)
	_ PlaceRepo   = (*Repository)(nil)
	_ EventRepo   = (*Repository)(nil)
	_ ExpenseRepo = (*Repository)(nil)
	_ TaskRepo    = (*Repository)(nil)
	_ BudgetRepo  = (*Repository)(nil)
	_ ExportRepo  = (*Repository)(nil)
)
