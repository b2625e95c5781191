package service_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
)

// The mocks below are hand-written test doubles for the repo interfaces.
// Each method is a function field: set only the ones your test needs.
// Calling an unset method panics, which flags an unexpected repo call.

type mockTripRepo struct {
	list         func(ctx context.Context) ([]domain.Trip, error)
	get          func(ctx context.Context, id string) (domain.Trip, error)
	save         func(ctx context.Context, trip domain.Trip) error
	delete       func(ctx context.Context, id string) error
	setCurrent   func(ctx context.Context, id string) error
	current      func(ctx context.Context) (domain.Trip, error)
	clearCurrent func(ctx context.Context) error
}

func (m *mockTripRepo) GenerateID() string { return "new-id" }
func (m *mockTripRepo) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	return m.get(ctx, id)
}
func (m *mockTripRepo) SaveTrip(ctx context.Context, trip domain.Trip) error {
	return m.save(ctx, trip)
}
func (m *mockTripRepo) DeleteTrip(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockTripRepo) SetCurrentTrip(ctx context.Context, id string) error {
	return m.setCurrent(ctx, id)
}
func (m *mockTripRepo) CurrentTrip(ctx context.Context) (domain.Trip, error) {
	return m.current(ctx)
}
func (m *mockTripRepo) ClearCurrentTrip(ctx context.Context) error {
	return m.clearCurrent(ctx)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockPlaceRepo struct {
	list   func(ctx context.Context, tripID string) ([]domain.PlaceItem, error)
	get    func(ctx context.Context, tripID, id string) (domain.PlaceItem, error)
	save   func(ctx context.Context, tripID string, place domain.PlaceItem) error
	delete func(ctx context.Context, tripID, id string) error
}

func (m *mockPlaceRepo) GenerateID() string { return "new-id" }
func (m *mockPlaceRepo) ListPlaces(ctx context.Context, tripID string) ([]domain.PlaceItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockPlaceRepo) GetPlace(ctx context.Context, tripID, id string) (domain.PlaceItem, error) {
	return m.get(ctx, tripID, id)
}
func (m *mockPlaceRepo) SavePlace(ctx context.Context, tripID string, place domain.PlaceItem) error {
	return m.save(ctx, tripID, place)
}
func (m *mockPlaceRepo) DeletePlace(ctx context.Context, tripID, id string) error {
	return m.delete(ctx, tripID, id)
}

var _ repo.PlaceRepo = (*mockPlaceRepo)(nil)

type mockEventRepo struct {
	list   func(ctx context.Context, tripID string) ([]domain.EventItem, error)
	get    func(ctx context.Context, tripID, id string) (domain.EventItem, error)
	save   func(ctx context.Context, tripID string, event domain.EventItem) error
	toggle func(ctx context.Context, tripID, id string) (domain.EventItem, error)
	delete func(ctx context.Context, tripID, id string) error
}

func (m *mockEventRepo) GenerateID() string { return "new-id" }
func (m *mockEventRepo) ListEvents(ctx context.Context, tripID string) ([]domain.EventItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockEventRepo) GetEvent(ctx context.Context, tripID, id string) (domain.EventItem, error) {
	return m.get(ctx, tripID, id)
}
func (m *mockEventRepo) SaveEvent(ctx context.Context, tripID string, event domain.EventItem) error {
	return m.save(ctx, tripID, event)
}
func (m *mockEventRepo) ToggleEventCompleted(ctx context.Context, tripID, id string) (domain.EventItem, error) {
	return m.toggle(ctx, tripID, id)
}
func (m *mockEventRepo) DeleteEvent(ctx context.Context, tripID, id string) error {
	return m.delete(ctx, tripID, id)
}

var _ repo.EventRepo = (*mockEventRepo)(nil)

type mockExpenseRepo struct {
	list   func(ctx context.Context, tripID string) ([]domain.ExpenseItem, error)
	get    func(ctx context.Context, tripID, id string) (domain.ExpenseItem, error)
	save   func(ctx context.Context, tripID string, expense domain.ExpenseItem) error
	delete func(ctx context.Context, tripID, id string) error
}

func (m *mockExpenseRepo) GenerateID() string { return "new-id" }
func (m *mockExpenseRepo) ListExpenses(ctx context.Context, tripID string) ([]domain.ExpenseItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockExpenseRepo) GetExpense(ctx context.Context, tripID, id string) (domain.ExpenseItem, error) {
	return m.get(ctx, tripID, id)
}
func (m *mockExpenseRepo) SaveExpense(ctx context.Context, tripID string, expense domain.ExpenseItem) error {
	return m.save(ctx, tripID, expense)
}
func (m *mockExpenseRepo) DeleteExpense(ctx context.Context, tripID, id string) error {
	return m.delete(ctx, tripID, id)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

type mockTaskRepo struct {
	list    func(ctx context.Context, tripID string) ([]domain.TaskItem, error)
	get     func(ctx context.Context, tripID, id string) (domain.TaskItem, error)
	save    func(ctx context.Context, tripID string, task domain.TaskItem) error
	replace func(ctx context.Context, tripID string, tasks []domain.TaskItem) error
	toggle  func(ctx context.Context, tripID, id string) (domain.TaskItem, error)
	delete  func(ctx context.Context, tripID, id string) error
}

func (m *mockTaskRepo) GenerateID() string { return "new-id" }
func (m *mockTaskRepo) ListTasks(ctx context.Context, tripID string) ([]domain.TaskItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockTaskRepo) GetTask(ctx context.Context, tripID, id string) (domain.TaskItem, error) {
	return m.get(ctx, tripID, id)
}
func (m *mockTaskRepo) SaveTask(ctx context.Context, tripID string, task domain.TaskItem) error {
	return m.save(ctx, tripID, task)
}
func (m *mockTaskRepo) ReplaceTasks(ctx context.Context, tripID string, tasks []domain.TaskItem) error {
	return m.replace(ctx, tripID, tasks)
}
func (m *mockTaskRepo) ToggleTaskCompleted(ctx context.Context, tripID, id string) (domain.TaskItem, error) {
	return m.toggle(ctx, tripID, id)
}
func (m *mockTaskRepo) DeleteTask(ctx context.Context, tripID, id string) error {
	return m.delete(ctx, tripID, id)
}

var _ repo.TaskRepo = (*mockTaskRepo)(nil)

type mockBudgetRepo struct {
	getBudget      func(ctx context.Context, tripID string) (decimal.Decimal, error)
	saveBudget     func(ctx context.Context, tripID string, amount decimal.Decimal) error
	getBudgetItem  func(ctx context.Context, tripID string) (domain.BudgetItem, error)
	saveBudgetItem func(ctx context.Context, tripID string, item domain.BudgetItem) error
}

func (m *mockBudgetRepo) GetBudget(ctx context.Context, tripID string) (decimal.Decimal, error) {
	return m.getBudget(ctx, tripID)
}
func (m *mockBudgetRepo) SaveBudget(ctx context.Context, tripID string, amount decimal.Decimal) error {
	return m.saveBudget(ctx, tripID, amount)
}
func (m *mockBudgetRepo) GetBudgetItem(ctx context.Context, tripID string) (domain.BudgetItem, error) {
	return m.getBudgetItem(ctx, tripID)
}
func (m *mockBudgetRepo) SaveBudgetItem(ctx context.Context, tripID string, item domain.BudgetItem) error {
	return m.saveBudgetItem(ctx, tripID, item)
}

var _ repo.BudgetRepo = (*mockBudgetRepo)(nil)

type mockExportRepo struct {
	export func(ctx context.Context) (domain.Snapshot, error)
}

func (m *mockExportRepo) Export(ctx context.Context) (domain.Snapshot, error) {
	return m.export(ctx)
}

var _ repo.ExportRepo = (*mockExportRepo)(nil)

// ---- shared helpers --------------------------------------------------------

// tripExists is a TripRepo whose GetTrip finds every ID.
func tripExists() *mockTripRepo {
	return &mockTripRepo{
		get: func(_ context.Context, id string) (domain.Trip, error) {
			return domain.Trip{ID: id, Name: "Paris Trip", Destination: "Paris"}, nil
		},
	}
}

// tripMissing is a TripRepo whose GetTrip never finds anything.
func tripMissing() *mockTripRepo {
	return &mockTripRepo{
		get: func(_ context.Context, _ string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}
