package domain

import "github.com/shopspring/decimal"

// Priority ranks places, events and tasks. Values are the labels the app
// has always stored.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities from high (0) to low (2); unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// PlaceItem is an itinerary entry: somewhere the traveller plans to go on a
// given day. Duration is in hours.
type PlaceItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Day           string          `json:"day"`
	Category      string          `json:"category"`
	Duration      float64         `json:"duration"`
	PreferredTime string          `json:"preferredTime"`
	Cost          decimal.Decimal `json:"cost"`
	Description   string          `json:"description"`
	Priority      Priority        `json:"priority"`
}

// RecordID implements the repository's record constraint.
func (p PlaceItem) RecordID() string { return p.ID }
