// Package stats derives read-only figures from repository snapshots: budget
// status, itinerary totals, filters, and trip search.
// Every function is pure; callers load the records first.
package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// Filter values that disable a filter. The app has used both spellings.
const (
	AllSentinel   = "All"
	TodosSentinel = "Todos"
)

var hundred = decimal.NewFromInt(100)

// BudgetStatus summarizes spending against a budget.
// Remaining is negative when over budget; display code should use
// OverBudget and Excess instead of showing a negative remainder.
type BudgetStatus struct {
	Budget          decimal.Decimal `json:"budget"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	Remaining       decimal.Decimal `json:"remaining"`
	ProgressPercent int64           `json:"progressPercent"`
	OverBudget      bool            `json:"overBudget"`
	Excess          decimal.Decimal `json:"excess"`
}

// Budget computes the spending status of expenses against budget.
// ProgressPercent is round(100*spent/budget), or 0 when the budget is zero.
func Budget(budget decimal.Decimal, expenses []domain.ExpenseItem) BudgetStatus {
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}

	s := BudgetStatus{
		Budget:     budget,
		TotalSpent: spent,
		Remaining:  budget.Sub(spent),
		Excess:     decimal.Zero,
	}
	if budget.IsPositive() {
		s.ProgressPercent = spent.Mul(hundred).Div(budget).Round(0).IntPart()
	}
	if spent.GreaterThan(budget) {
		s.OverBudget = true
		s.Excess = spent.Sub(budget)
	}
	return s
}

// ExpensesByCategory totals expense amounts per category.
func ExpensesByCategory(expenses []domain.ExpenseItem) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out
}

// ItineraryStats summarizes the places of a trip.
type ItineraryStats struct {
	Days          int             `json:"days"`
	Places        int             `json:"places"`
	TotalDuration float64         `json:"totalDurationHours"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}

// Itinerary counts distinct non-empty day labels and sums durations and costs.
func Itinerary(places []domain.PlaceItem) ItineraryStats {
	days := make(map[string]struct{})
	s := ItineraryStats{Places: len(places), TotalCost: decimal.Zero}
	for _, p := range places {
		if p.Day != "" {
			days[p.Day] = struct{}{}
		}
		s.TotalDuration += p.Duration
		s.TotalCost = s.TotalCost.Add(p.Cost)
	}
	s.Days = len(days)
	return s
}

// EventStats counts completed events.
type EventStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// EventProgress reports how many events are completed.
func EventProgress(events []domain.EventItem) EventStats {
	s := EventStats{Total: len(events)}
	for _, e := range events {
		if e.Completed {
			s.Completed++
		}
	}
	return s
}

func isAll(v string) bool {
	return v == "" || v == AllSentinel || v == TodosSentinel
}

// FilterPlacesByDay keeps places whose day label contains day.
func FilterPlacesByDay(places []domain.PlaceItem, day string) []domain.PlaceItem {
	if isAll(day) {
		return places
	}
	return filter(places, func(p domain.PlaceItem) bool { return strings.Contains(p.Day, day) })
}

// FilterPlacesByCategory keeps places with exactly this category.
func FilterPlacesByCategory(places []domain.PlaceItem, category string) []domain.PlaceItem {
	if isAll(category) {
		return places
	}
	return filter(places, func(p domain.PlaceItem) bool { return p.Category == category })
}

// FilterExpensesByCategory keeps expenses with exactly this category.
func FilterExpensesByCategory(expenses []domain.ExpenseItem, category string) []domain.ExpenseItem {
	if isAll(category) {
		return expenses
	}
	return filter(expenses, func(e domain.ExpenseItem) bool { return e.Category == category })
}

// FilterEventsByDate keeps events scheduled on exactly this date, the way a
// calendar day view lists them. An empty date keeps every event.
func FilterEventsByDate(events []domain.EventItem, date string) []domain.EventItem {
	if date == "" {
		return events
	}
	return filter(events, func(e domain.EventItem) bool { return e.Date == date })
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortPlaces orders places by day label, then preferred time, then higher
// priority first. The input is not modified.
func SortPlaces(places []domain.PlaceItem) []domain.PlaceItem {
	out := slices.Clone(places)
	slices.SortStableFunc(out, func(a, b domain.PlaceItem) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.PreferredTime, b.PreferredTime),
			cmp.Compare(a.Priority.Rank(), b.Priority.Rank()),
		)
	})
	return out
}

// TripStats summarizes the trip list.
type TripStats struct {
	Count        int             `json:"count"`
	TotalBudget  decimal.Decimal `json:"totalBudget"`
	Destinations int             `json:"destinations"`
}

// Trips counts trips, sums their budgets and counts distinct destinations
// (case-insensitive).
func Trips(trips []domain.Trip) TripStats {
	dest := make(map[string]struct{})
	s := TripStats{Count: len(trips), TotalBudget: decimal.Zero}
	for _, t := range trips {
		if t.Budget != nil {
			s.TotalBudget = s.TotalBudget.Add(*t.Budget)
		}
		if d := strings.ToLower(strings.TrimSpace(t.Destination)); d != "" {
			dest[d] = struct{}{}
		}
	}
	s.Destinations = len(dest)
	return s
}

// SearchTrips returns trips whose name, destination or notes contain term,
// ignoring case. A blank term returns every trip.
func SearchTrips(trips []domain.Trip, term string) []domain.Trip {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return trips
	}
	return filter(trips, func(t domain.Trip) bool {
		return strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Destination), term) ||
			strings.Contains(strings.ToLower(t.Notes), term)
	})
}
