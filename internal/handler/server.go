// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, place.go, etc.) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/citysearch"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
	"github.com/alvesgeorge/PlanerTrip/internal/stats"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context, query string) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (stats.TripStats, error)
	Current(ctx context.Context) (domain.Trip, error)
	SetCurrent(ctx context.Context, id string) (domain.Trip, error)
	ClearCurrent(ctx context.Context) error
}

// PlaceServicer defines the itinerary operations.
type PlaceServicer interface {
	Create(ctx context.Context, tripID string, place domain.PlaceItem) (domain.PlaceItem, error)
	GetByID(ctx context.Context, tripID, id string) (domain.PlaceItem, error)
	List(ctx context.Context, tripID string, filter service.PlaceFilter) ([]domain.PlaceItem, error)
	Update(ctx context.Context, tripID string, place domain.PlaceItem) (domain.PlaceItem, error)
	Delete(ctx context.Context, tripID, id string) error
	ItineraryStats(ctx context.Context, tripID string) (stats.ItineraryStats, error)
}

// EventServicer defines the event operations.
type EventServicer interface {
	Create(ctx context.Context, tripID string, event domain.EventItem) (domain.EventItem, error)
	GetByID(ctx context.Context, tripID, id string) (domain.EventItem, error)
	List(ctx context.Context, tripID, date string) ([]domain.EventItem, error)
	Update(ctx context.Context, tripID string, event domain.EventItem) (domain.EventItem, error)
	Toggle(ctx context.Context, tripID, id string) (domain.EventItem, error)
	Delete(ctx context.Context, tripID, id string) error
	Progress(ctx context.Context, tripID string) (stats.EventStats, error)
}

// ExpenseServicer defines the expense operations.
type ExpenseServicer interface {
	Create(ctx context.Context, tripID string, expense domain.ExpenseItem) (domain.ExpenseItem, error)
	GetByID(ctx context.Context, tripID, id string) (domain.ExpenseItem, error)
	List(ctx context.Context, tripID, category string) ([]domain.ExpenseItem, error)
	Update(ctx context.Context, tripID string, expense domain.ExpenseItem) (domain.ExpenseItem, error)
	Delete(ctx context.Context, tripID, id string) error
	ByCategory(ctx context.Context, tripID string) (map[string]decimal.Decimal, error)
}

// TaskServicer defines the checklist operations.
type TaskServicer interface {
	Create(ctx context.Context, tripID string, task domain.TaskItem) (domain.TaskItem, error)
	GetByID(ctx context.Context, tripID, id string) (domain.TaskItem, error)
	List(ctx context.Context, tripID string) ([]domain.TaskItem, error)
	Update(ctx context.Context, tripID string, task domain.TaskItem) (domain.TaskItem, error)
	Replace(ctx context.Context, tripID string, tasks []domain.TaskItem) ([]domain.TaskItem, error)
	Toggle(ctx context.Context, tripID, id string) (domain.TaskItem, error)
	Delete(ctx context.Context, tripID, id string) error
}

// BudgetServicer defines the budget operations.
type BudgetServicer interface {
	Get(ctx context.Context, tripID string) (service.Budget, error)
	Set(ctx context.Context, tripID string, amount decimal.Decimal, item *domain.BudgetItem) (service.Budget, error)
	Status(ctx context.Context, tripID string) (stats.BudgetStatus, error)
}

// ExportServicer produces the full data export.
type ExportServicer interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Rows(ctx context.Context) ([]domain.ExportRow, error)
}

// Services bundles the dependencies of Server. Nil services leave their
// routes unregistered.
type Services struct {
	Trips    TripServicer
	Places   PlaceServicer
	Events   EventServicer
	Expenses ExpenseServicer
	Tasks    TaskServicer
	Budgets  BudgetServicer
	Export   ExportServicer
	Cities   citysearch.Provider

	// OpenAPI is served verbatim at /openapi.yaml when non-empty.
	OpenAPI []byte
}

// Server holds the services behind every endpoint.
type Server struct {
	trips    TripServicer
	places   PlaceServicer
	events   EventServicer
	expenses ExpenseServicer
	tasks    TaskServicer
	budgets  BudgetServicer
	export   ExportServicer
	cities   citysearch.Provider
	openAPI  []byte
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:    svc.Trips,
		places:   svc.Places,
		events:   svc.Events,
		expenses: svc.Expenses,
		tasks:    svc.Tasks,
		budgets:  svc.Budgets,
		export:   svc.Export,
		cities:   svc.Cities,
		openAPI:  svc.OpenAPI,
		log:      log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{}, nil)
}

// Routes returns the API router. Middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	if len(s.openAPI) > 0 {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	if s.trips != nil {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/stats", s.GetTripStats)
			r.Route("/{tripId}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				s.childRoutes(r)
			})
		})
		r.Route("/current-trip", func(r chi.Router) {
			r.Get("/", s.GetCurrentTrip)
			r.Put("/", s.SetCurrentTrip)
			r.Delete("/", s.ClearCurrentTrip)
		})
	}
	if s.export != nil {
		r.Get("/export", s.GetExport)
	}
	if s.cities != nil {
		r.Get("/cities", s.SearchCities)
	}
	return r
}

// childRoutes mounts the per-trip collections under /trips/{tripId}.
func (s *Server) childRoutes(r chi.Router) {
	if s.places != nil {
		r.Get("/itinerary/stats", s.GetItineraryStats)
		r.Route("/places", func(r chi.Router) {
			r.Get("/", s.ListPlaces)
			r.Post("/", s.CreatePlace)
			r.Get("/{placeId}", s.GetPlace)
			r.Put("/{placeId}", s.UpdatePlace)
			r.Delete("/{placeId}", s.DeletePlace)
		})
	}
	if s.events != nil {
		r.Route("/events", func(r chi.Router) {
			r.Get("/", s.ListEvents)
			r.Post("/", s.CreateEvent)
			r.Get("/progress", s.GetEventProgress)
			r.Get("/{eventId}", s.GetEvent)
			r.Put("/{eventId}", s.UpdateEvent)
			r.Delete("/{eventId}", s.DeleteEvent)
			r.Post("/{eventId}/toggle", s.ToggleEvent)
		})
	}
	if s.expenses != nil {
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.ListExpenses)
			r.Post("/", s.CreateExpense)
			r.Get("/by-category", s.GetExpensesByCategory)
			r.Get("/{expenseId}", s.GetExpense)
			r.Put("/{expenseId}", s.UpdateExpense)
			r.Delete("/{expenseId}", s.DeleteExpense)
		})
	}
	if s.tasks != nil {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.ListTasks)
			r.Post("/", s.CreateTask)
			r.Put("/", s.ReplaceTasks)
			r.Get("/{taskId}", s.GetTask)
			r.Put("/{taskId}", s.UpdateTask)
			r.Delete("/{taskId}", s.DeleteTask)
			r.Post("/{taskId}/toggle", s.ToggleTask)
		})
	}
	if s.budgets != nil {
		r.Get("/budget", s.GetBudget)
		r.Put("/budget", s.SetBudget)
		r.Get("/budget/status", s.GetBudgetStatus)
	}
}
