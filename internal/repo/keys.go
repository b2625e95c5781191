package repo

// Persisted key layout. Child partitions are suffixed with the owning trip ID.
const (
	keyTrips       = "trips"
	keyCurrentTrip = "current_trip_id"

	prefixPlaces     = "places_"
	prefixEvents     = "events_"
	prefixExpenses   = "expenses_"
	prefixBudget     = "budget_"
	prefixBudgetItem = "budget_item_"
	prefixTasks      = "tasks_"

	// Read-only legacy keys holding ";"-joined positional records.
	keyLegacyTrips     = "trip_list"
	keyLegacyItinerary = "itinerary_list"
)

func placesKey(tripID string) string     { return prefixPlaces + tripID }
func eventsKey(tripID string) string     { return prefixEvents + tripID }
func expensesKey(tripID string) string   { return prefixExpenses + tripID }
func budgetKey(tripID string) string     { return prefixBudget + tripID }
func budgetItemKey(tripID string) string { return prefixBudgetItem + tripID }
func tasksKey(tripID string) string      { return prefixTasks + tripID }

// reservedTripIDPrefix is refused for trip IDs: budget_ + "item_X" would
// name the budget_item_ partition of trip X.
const reservedTripIDPrefix = "item_"

// partitionKeys lists every key owned by a trip, in lock order.
func partitionKeys(tripID string) []string {
	return []string{
		placesKey(tripID),
		eventsKey(tripID),
		expensesKey(tripID),
		budgetKey(tripID),
		budgetItemKey(tripID),
		tasksKey(tripID),
	}
}
