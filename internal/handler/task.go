package handler

import (
	"net/http"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// TaskRequest is the body of the task create and update endpoints.
type TaskRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Completed   bool            `json:"completed"`
	Priority    domain.Priority `json:"priority" validate:"omitempty,priority"`
	DueDate     string          `json:"dueDate"`
	Category    string          `json:"category"`
}

// TaskListItem is one entry of a checklist replacement. An empty ID asks for
// a new one.
type TaskListItem struct {
	ID string `json:"id"`
	TaskRequest
}

// TaskListRequest is the body of PUT /trips/{tripId}/tasks.
type TaskListRequest struct {
	Tasks []TaskListItem `json:"tasks" validate:"required,dive"`
}

// CreateTask handles POST /trips/{tripId}/tasks.
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req TaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.tasks.Create(r.Context(), tripID, requestToTask("", req))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTasks handles GET /trips/{tripId}/tasks.
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	tasks, err := s.tasks.List(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(tasks))
}

// ReplaceTasks handles PUT /trips/{tripId}/tasks.
// The body's list becomes the trip's whole checklist, in order.
func (s *Server) ReplaceTasks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var req TaskListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tasks := make([]domain.TaskItem, len(req.Tasks))
	for i, item := range req.Tasks {
		tasks[i] = requestToTask(item.ID, item.TaskRequest)
	}
	stored, err := s.tasks.Replace(r.Context(), tripID, tasks)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(stored))
}

// GetTask handles GET /trips/{tripId}/tasks/{taskId}.
func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := taskPath(w, r)
	if !ok {
		return
	}
	task, err := s.tasks.GetByID(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// UpdateTask handles PUT /trips/{tripId}/tasks/{taskId}.
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := taskPath(w, r)
	if !ok {
		return
	}
	var req TaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := s.tasks.Update(r.Context(), tripID, requestToTask(id, req))
	if err != nil {
		s.writeServiceError(w, r, err, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ToggleTask handles POST /trips/{tripId}/tasks/{taskId}/toggle.
func (s *Server) ToggleTask(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := taskPath(w, r)
	if !ok {
		return
	}
	task, err := s.tasks.Toggle(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /trips/{tripId}/tasks/{taskId}.
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := taskPath(w, r)
	if !ok {
		return
	}
	if err := s.tasks.Delete(r.Context(), tripID, id); err != nil {
		s.writeServiceError(w, r, err, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func taskPath(w http.ResponseWriter, r *http.Request) (tripID, id string, ok bool) {
	if tripID, ok = pathParam(w, r, "tripId"); !ok {
		return "", "", false
	}
	if id, ok = pathParam(w, r, "taskId"); !ok {
		return "", "", false
	}
	return tripID, id, true
}

func requestToTask(id string, req TaskRequest) domain.TaskItem {
	return domain.TaskItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Category:    req.Category,
	}
}
