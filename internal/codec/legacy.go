package codec

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

const (
	legacyRecordSep = ";"
	legacyFieldSep  = "|"

	// Field counts of the legacy positional formats.
	legacyTripFields         = 6  // name|destination|start|end|budget|notes
	legacyTripWithCityFields = 9  // ...|cityName|country|countryCode
	legacyPlaceMinFields     = 9  // id|name|address|day|category|duration|time|cost|description
	legacyItineraryFields    = 13 // id|trip|day|date|title|desc|start|end|location|category|cost|notes|done

	legacyPlaceDefaultDuration = 2.0
)

// legacyTripNamespace seeds the deterministic IDs given to legacy trips, which
// were stored without one. The same name and destination always map to the
// same ID, so migrating twice does not duplicate trips.
var legacyTripNamespace = uuid.MustParse("6f1c9a57-3d0e-4b8a-9a43-5b7f2e1d8c64")

// LegacyTripID returns the ID assigned to a legacy trip. Legacy trips were
// identified by name and destination.
func LegacyTripID(name, destination string) string {
	return uuid.NewSHA1(legacyTripNamespace, []byte(name+legacyFieldSep+destination)).String()
}

// LegacyItineraryEntry is one row of the legacy itinerary list. Rows point at
// their trip by name, so the caller resolves TripName to a trip ID.
type LegacyItineraryEntry struct {
	TripName      string
	DayNumber     int
	EstimatedCost decimal.Decimal
	Event         domain.EventItem
}

// legacyItineraryCategories are the only category names the legacy format
// could hold.
var legacyItineraryCategories = map[string]bool{
	"TRANSPORT": true, "ACCOMMODATION": true, "FOOD": true, "ATTRACTION": true,
	"SHOPPING": true, "ENTERTAINMENT": true, "RELAXATION": true, "OTHERS": true,
}

// splitLegacy splits a legacy blob into records, dropping empty ones.
func splitLegacy(blob string) []string {
	if strings.TrimSpace(blob) == "" {
		return nil
	}
	var out []string
	for _, rec := range strings.Split(blob, legacyRecordSep) {
		if rec != "" {
			out = append(out, rec)
		}
	}
	return out
}

// DecodeLegacyTrips parses a legacy trip_list blob. Rows with a field count
// other than 6 or 9 are skipped and counted.
func DecodeLegacyTrips(blob string) (trips []domain.Trip, skipped int) {
	trips = []domain.Trip{}
	for _, rec := range splitLegacy(blob) {
		t, ok := decodeLegacyTrip(rec)
		if !ok {
			skipped++
			continue
		}
		trips = append(trips, t)
	}
	return trips, skipped
}

func decodeLegacyTrip(rec string) (domain.Trip, bool) {
	parts := strings.Split(rec, legacyFieldSep)
	if len(parts) != legacyTripFields && len(parts) != legacyTripWithCityFields {
		return domain.Trip{}, false
	}

	t := domain.Trip{
		ID:          LegacyTripID(parts[0], parts[1]),
		Name:        parts[0],
		Destination: parts[1],
		StartDate:   parts[2],
		EndDate:     parts[3],
		Notes:       parts[5],
	}
	if amount, ok := ParseMoney(parts[4]); ok {
		t.Budget = &amount
	}
	if len(parts) == legacyTripWithCityFields && parts[6] != "" && parts[7] != "" {
		t.SelectedCity = &domain.City{
			Name:        parts[6],
			Country:     parts[7],
			CountryCode: parts[8],
		}
	}
	return t, true
}

// EncodeLegacyTrip renders a trip in the 9-field legacy format. Only tests
// and fixtures write this format.
func EncodeLegacyTrip(t domain.Trip) string {
	budget := ""
	if t.Budget != nil {
		budget = t.Budget.String()
	}
	city := []string{"", "", ""}
	if t.SelectedCity != nil {
		city = []string{t.SelectedCity.Name, t.SelectedCity.Country, t.SelectedCity.CountryCode}
	}
	fields := append([]string{t.Name, t.Destination, t.StartDate, t.EndDate, budget, t.Notes}, city...)
	return strings.Join(fields, legacyFieldSep)
}

// DecodeLegacyPlaces parses ";"-joined legacy place records. Records with
// fewer than 9 fields are skipped. Unparseable durations fall back to two
// hours and unparseable costs to zero, as the old reader did; a missing tenth
// field means medium priority.
func DecodeLegacyPlaces(blob string) (places []domain.PlaceItem, skipped int) {
	places = []domain.PlaceItem{}
	for _, rec := range splitLegacy(blob) {
		parts := strings.Split(rec, legacyFieldSep)
		if len(parts) < legacyPlaceMinFields || parts[0] == "" {
			skipped++
			continue
		}

		duration, err := strconv.ParseFloat(parts[5], 64)
		if err != nil {
			duration = legacyPlaceDefaultDuration
		}
		cost, err := decimal.NewFromString(parts[7])
		if err != nil {
			cost = decimal.Zero
		}
		priority := domain.PriorityMedium
		if len(parts) > legacyPlaceMinFields && parts[9] != "" {
			priority = domain.Priority(parts[9])
		}

		places = append(places, domain.PlaceItem{
			ID:            parts[0],
			Name:          parts[1],
			Address:       parts[2],
			Day:           parts[3],
			Category:      parts[4],
			Duration:      duration,
			PreferredTime: parts[6],
			Cost:          cost,
			Description:   parts[8],
			Priority:      priority,
		})
	}
	return places, skipped
}

// EncodeLegacyPlace renders a place in the 10-field legacy format. Only tests
// and fixtures write this format.
func EncodeLegacyPlace(p domain.PlaceItem) string {
	return strings.Join([]string{
		p.ID, p.Name, p.Address, p.Day, p.Category,
		strconv.FormatFloat(p.Duration, 'f', -1, 64),
		p.PreferredTime, p.Cost.String(), p.Description, string(p.Priority),
	}, legacyFieldSep)
}

// DecodeLegacyItinerary parses a legacy itinerary_list blob. Rows without
// exactly 13 fields or with an unknown category are skipped.
func DecodeLegacyItinerary(blob string) (entries []LegacyItineraryEntry, skipped int) {
	entries = []LegacyItineraryEntry{}
	for _, rec := range splitLegacy(blob) {
		parts := strings.Split(rec, legacyFieldSep)
		if len(parts) != legacyItineraryFields || parts[0] == "" || !legacyItineraryCategories[parts[9]] {
			skipped++
			continue
		}

		day, err := strconv.Atoi(parts[2])
		if err != nil {
			day = 1
		}
		cost, _ := ParseMoney(parts[10])

		description := parts[5]
		if parts[11] != "" {
			if description != "" {
				description += "\n"
			}
			description += parts[11]
		}

		entries = append(entries, LegacyItineraryEntry{
			TripName:      parts[1],
			DayNumber:     day,
			EstimatedCost: cost,
			Event: domain.EventItem{
				ID:          parts[0],
				Title:       parts[4],
				Description: description,
				Date:        parts[3],
				StartTime:   parts[6],
				EndTime:     parts[7],
				Location:    parts[8],
				Category:    parts[9],
				Completed:   parts[12] == "true",
			},
		})
	}
	return entries, skipped
}

// ParseMoney parses a free-text amount such as "R$ 1.500,50", "1500.50" or
// "300". When a comma is present it is the decimal separator and dots are
// thousands separators; otherwise a dot is the decimal separator.
func ParseMoney(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
