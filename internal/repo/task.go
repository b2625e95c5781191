package repo

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func (r *Repository) tasks(tripID string) collection[domain.TaskItem] {
	return collection[domain.TaskItem]{r: r, key: tasksKey(tripID), tripID: tripID}
}

// ListTasks returns the trip's tasks in stored order.
func (r *Repository) ListTasks(ctx context.Context, tripID string) ([]domain.TaskItem, error) {
	tasks, err := r.tasks(tripID).list(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Repository.ListTasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one task of the trip, or domain.ErrNotFound.
func (r *Repository) GetTask(ctx context.Context, tripID, id string) (domain.TaskItem, error) {
	t, err := r.tasks(tripID).get(ctx, id)
	if err != nil {
		return domain.TaskItem{}, fmt.Errorf("repo.Repository.GetTask: %w", err)
	}
	return t, nil
}

// SaveTask upserts the task into the trip's partition.
func (r *Repository) SaveTask(ctx context.Context, tripID string, t domain.TaskItem) error {
	if err := requireID("task", t.ID); err != nil {
		return fmt.Errorf("repo.Repository.SaveTask: %w", err)
	}
	if err := r.tasks(tripID).save(ctx, t); err != nil {
		return fmt.Errorf("repo.Repository.SaveTask: %w", err)
	}
	return nil
}

// ReplaceTasks overwrites the trip's whole task list.
func (r *Repository) ReplaceTasks(ctx context.Context, tripID string, tasks []domain.TaskItem) error {
	for _, t := range tasks {
		if err := requireID("task", t.ID); err != nil {
			return fmt.Errorf("repo.Repository.ReplaceTasks: %w", err)
		}
	}
	if err := r.tasks(tripID).replace(ctx, tasks); err != nil {
		return fmt.Errorf("repo.Repository.ReplaceTasks: %w", err)
	}
	return nil
}

// ToggleTaskCompleted flips the task's completion flag atomically.
func (r *Repository) ToggleTaskCompleted(ctx context.Context, tripID, id string) (domain.TaskItem, error) {
	t, err := r.tasks(tripID).modify(ctx, id, func(t *domain.TaskItem) {
		t.Completed = !t.Completed
	})
	if err != nil {
		return domain.TaskItem{}, fmt.Errorf("repo.Repository.ToggleTaskCompleted: %w", err)
	}
	return t, nil
}

// DeleteTask removes the task; an unknown ID is a no-op.
func (r *Repository) DeleteTask(ctx context.Context, tripID, id string) error {
	if err := r.tasks(tripID).delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Repository.DeleteTask: %w", err)
	}
	return nil
}
