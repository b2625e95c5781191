package domain

import "encoding/json"

// DefaultEventCategory is used when an event is stored without a category.
const DefaultEventCategory = "Evento"

// EventItem is a calendar entry.
//
// Older records carry a single "time" and a "type" instead of
// startTime/endTime and category; UnmarshalJSON folds them into this shape.
type EventItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime,omitempty"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// RecordID implements the repository's record constraint.
func (e EventItem) RecordID() string { return e.ID }

// TimeRange describes when the event happens.
func (e EventItem) TimeRange() string {
	switch {
	case e.StartTime != "" && e.EndTime != "":
		return e.StartTime + " - " + e.EndTime
	case e.StartTime != "":
		return "from " + e.StartTime
	default:
		return "any time"
	}
}

func (e *EventItem) UnmarshalJSON(b []byte) error {
	type canonical EventItem
	var aux struct {
		canonical
		Time        *string `json:"time"`
		Type        *string `json:"type"`
		IsCompleted *bool   `json:"isCompleted"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*e = EventItem(aux.canonical)
	if e.StartTime == "" && aux.Time != nil {
		e.StartTime = *aux.Time
	}
	if e.Category == "" && aux.Type != nil {
		e.Category = *aux.Type
	}
	if aux.IsCompleted != nil && *aux.IsCompleted {
		e.Completed = true
	}
	if e.Category == "" {
		e.Category = DefaultEventCategory
	}
	return nil
}
