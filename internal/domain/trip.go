// Package domain contains the core record types of the trip planner.
// Records are plain values identified by an opaque string ID that is unique
// within the collection (trip list or per-trip partition) that holds them.
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Trip is the top-level planning unit. Every other record belongs to a trip
// through the storage partition keyed by the trip's ID.
//
// StartDate and EndDate are kept as the labels the traveller entered
// ("15/06/2025" or "2025-06-15"); see ParseDate for the accepted layouts.
type Trip struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Destination  string           `json:"destination"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	Budget       *decimal.Decimal `json:"budget,omitempty"` // nil when no budget was entered
	Notes        string           `json:"notes,omitempty"`
	SelectedCity *City            `json:"selectedCity,omitempty"`
	CreatedAt    Timestamp        `json:"createdAt"`
}

// RecordID implements the repository's record constraint.
func (t Trip) RecordID() string { return t.ID }

// FormattedLocation renders the selected city with its flag, or the free-text
// destination when no city was picked.
func (t Trip) FormattedLocation() string {
	if t.SelectedCity != nil {
		return t.SelectedCity.Flag() + " " + t.SelectedCity.Name + ", " + t.SelectedCity.Country
	}
	return "📍 " + t.Destination
}

// DateRange describes the trip dates for display.
func (t Trip) DateRange() string {
	switch {
	case t.StartDate != "" && t.EndDate != "":
		return t.StartDate + " – " + t.EndDate
	case t.StartDate != "":
		return "from " + t.StartDate
	default:
		return "dates to be defined"
	}
}

// City is a city chosen from the search provider when the trip was created.
type City struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region,omitempty"`
	RegionCode  string `json:"regionCode,omitempty"`
	Population  int    `json:"population,omitempty"`
}

// DisplayName returns "Name, RegionCode, Country", dropping the region code
// when it is unknown.
func (c City) DisplayName() string {
	if c.RegionCode != "" {
		return c.Name + ", " + c.RegionCode + ", " + c.Country
	}
	return c.Name + ", " + c.Country
}

var countryFlags = map[string]string{
	"br": "🇧🇷", "us": "🇺🇸", "gb": "🇬🇧", "fr": "🇫🇷", "it": "🇮🇹",
	"es": "🇪🇸", "de": "🇩🇪", "ca": "🇨🇦", "au": "🇦🇺", "jp": "🇯🇵",
	"kr": "🇰🇷", "th": "🇹🇭", "ae": "🇦🇪", "sg": "🇸🇬", "hk": "🇭🇰",
	"nl": "🇳🇱", "at": "🇦🇹", "cz": "🇨🇿", "hu": "🇭🇺",
}

// Flag returns the flag emoji for the city's country, or a globe.
func (c City) Flag() string {
	if f, ok := countryFlags[strings.ToLower(c.CountryCode)]; ok {
		return f
	}
	return "🌍"
}

// dateLayouts are the layouts accepted for trip, event and expense dates.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

// ParseDate parses a date label in any of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
