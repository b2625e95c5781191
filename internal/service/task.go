package service

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
)

// TaskService implements business logic for trip tasks.
type TaskService struct {
	trips repo.TripRepo
	tasks repo.TaskRepo
}

// NewTaskService constructs a TaskService backed by the provided repos.
func NewTaskService(trips repo.TripRepo, tasks repo.TaskRepo) *TaskService {
	return &TaskService{trips: trips, tasks: tasks}
}

// Create validates the task, verifies the parent trip exists, then persists it
// as not completed.
func (s *TaskService) Create(ctx context.Context, tripID string, task domain.TaskItem) (domain.TaskItem, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return domain.TaskItem{}, fmt.Errorf("service.TaskService.Create: %w", err)
	}
	task, err := normalizeTask(task)
	if err != nil {
		return domain.TaskItem{}, err
	}
	task.ID = s.tasks.GenerateID()
	task.Completed = false
	if err := s.tasks.SaveTask(ctx, tripID, task); err != nil {
		return domain.TaskItem{}, fmt.Errorf("service.TaskService.Create: %w", err)
	}
	return task, nil
}

// GetByID returns a single task, scoped to the trip.
func (s *TaskService) GetByID(ctx context.Context, tripID, id string) (domain.TaskItem, error) {
	task, err := s.tasks.GetTask(ctx, tripID, id)
	if err != nil {
		return domain.TaskItem{}, fmt.Errorf("service.TaskService.GetByID: %w", err)
	}
	return task, nil
}

// List returns the trip's tasks in stored order.
func (s *TaskService) List(ctx context.Context, tripID string) ([]domain.TaskItem, error) {
	tasks, err := s.tasks.ListTasks(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TaskService.List: %w", err)
	}
	return tasks, nil
}

// Update validates and replaces an existing task.
func (s *TaskService) Update(ctx context.Context, tripID string, task domain.TaskItem) (domain.TaskItem, error) {
	task, err := normalizeTask(task)
	if err != nil {
		return domain.TaskItem{}, err
	}
	if _, err := s.tasks.GetTask(ctx, tripID, task.ID); err != nil {
		return domain.TaskItem{}, fmt.Errorf("service.TaskService.Update: %w", err)
	}
	if err := s.tasks.SaveTask(ctx, tripID, task); err != nil {
		return domain.TaskItem{}, fmt.Errorf("service.TaskService.Update: %w", err)
	}
	return task, nil
}

// Replace validates every task and stores them as the trip's whole checklist,
// in the given order. Tasks without an ID get a new one; an ID may appear
// only once.
func (s *TaskService) Replace(ctx context.Context, tripID string, tasks []domain.TaskItem) ([]domain.TaskItem, error) {
	if _, err := s.trips.GetTrip(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TaskService.Replace: %w", err)
	}
	out := make([]domain.TaskItem, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))
	for i, task := range tasks {
		task, err := normalizeTask(task)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		if task.ID == "" {
			task.ID = s.tasks.GenerateID()
		} else if seen[task.ID] {
			return nil, validationError("task id %s appears more than once", task.ID)
		}
		seen[task.ID] = true
		out = append(out, task)
	}
	if err := s.tasks.ReplaceTasks(ctx, tripID, out); err != nil {
		return nil, fmt.Errorf("service.TaskService.Replace: %w", err)
	}
	return out, nil
}

// Toggle flips the task's completion flag.
func (s *TaskService) Toggle(ctx context.Context, tripID, id string) (domain.TaskItem, error) {
	task, err := s.tasks.ToggleTaskCompleted(ctx, tripID, id)
	if err != nil {
		return domain.TaskItem{}, fmt.Errorf("service.TaskService.Toggle: %w", err)
	}
	return task, nil
}

// Delete removes a task. Removing an unknown task is not an error.
func (s *TaskService) Delete(ctx context.Context, tripID, id string) error {
	if err := s.tasks.DeleteTask(ctx, tripID, id); err != nil {
		return fmt.Errorf("service.TaskService.Delete: %w", err)
	}
	return nil
}

func normalizeTask(t domain.TaskItem) (domain.TaskItem, error) {
	if err := required("title", t.Title); err != nil {
		return t, err
	}
	priority, err := normalizePriority(t.Priority)
	if err != nil {
		return t, err
	}
	t.Priority = priority
	return t, nil
}
