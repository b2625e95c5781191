package domain

import "encoding/json"

// TaskItem is a to-do entry attached to a trip (book hotel, renew passport).
type TaskItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Category    string   `json:"category"`
}

// RecordID implements the repository's record constraint.
func (t TaskItem) RecordID() string { return t.ID }

// UnmarshalJSON also accepts the "isCompleted" flag used by older records.
func (t *TaskItem) UnmarshalJSON(b []byte) error {
	type canonical TaskItem
	var aux struct {
		canonical
		IsCompleted *bool `json:"isCompleted"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*t = TaskItem(aux.canonical)
	if aux.IsCompleted != nil && *aux.IsCompleted {
		t.Completed = true
	}
	return nil
}
