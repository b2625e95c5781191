package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

func TestTaskService_Create(t *testing.T) {
	var saved domain.TaskItem
	tasks := &mockTaskRepo{
		save: func(_ context.Context, _ string, task domain.TaskItem) error { saved = task; return nil },
	}
	svc := service.NewTaskService(tripExists(), tasks)

	got, err := svc.Create(context.Background(), "t1", domain.TaskItem{Title: "Renew passport", Completed: true})

	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
	assert.False(t, saved.Completed)
	assert.Equal(t, domain.PriorityMedium, saved.Priority)
}

func TestTaskService_Create_BlankTitle(t *testing.T) {
	svc := service.NewTaskService(tripExists(), &mockTaskRepo{})

	_, err := svc.Create(context.Background(), "t1", domain.TaskItem{Title: ""})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title is required")
}

func TestTaskService_Toggle_NotFound(t *testing.T) {
	tasks := &mockTaskRepo{
		toggle: func(context.Context, string, string) (domain.TaskItem, error) {
			return domain.TaskItem{}, domain.ErrNotFound
		},
	}
	svc := service.NewTaskService(tripExists(), tasks)

	_, err := svc.Toggle(context.Background(), "t1", "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskService_Update(t *testing.T) {
	var saved domain.TaskItem
	tasks := &mockTaskRepo{
		get: func(_ context.Context, _, id string) (domain.TaskItem, error) {
			return domain.TaskItem{ID: id, Title: "Old"}, nil
		},
		save: func(_ context.Context, _ string, task domain.TaskItem) error { saved = task; return nil },
	}
	svc := service.NewTaskService(tripExists(), tasks)

	_, err := svc.Update(context.Background(), "t1", domain.TaskItem{ID: "k1", Title: "New", Completed: true, Priority: domain.PriorityHigh})

	require.NoError(t, err)
	assert.Equal(t, "New", saved.Title)
	assert.True(t, saved.Completed, "updates may set completion directly")
	assert.Equal(t, domain.PriorityHigh, saved.Priority)
}

func TestTaskService_Replace(t *testing.T) {
	var stored []domain.TaskItem
	tasks := &mockTaskRepo{
		replace: func(_ context.Context, tripID string, items []domain.TaskItem) error {
			assert.Equal(t, "t1", tripID)
			stored = items
			return nil
		},
	}
	svc := service.NewTaskService(tripExists(), tasks)

	got, err := svc.Replace(context.Background(), "t1", []domain.TaskItem{
		{ID: "k1", Title: "Passport", Completed: true},
		{Title: "Insurance"},
	})

	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, got, stored)
	assert.Equal(t, "k1", stored[0].ID)
	assert.True(t, stored[0].Completed)
	assert.Equal(t, "new-id", stored[1].ID)
	assert.Equal(t, domain.PriorityMedium, stored[1].Priority)
}

func TestTaskService_Replace_Validation(t *testing.T) {
	svc := service.NewTaskService(tripExists(), &mockTaskRepo{})

	_, err := svc.Replace(context.Background(), "t1", []domain.TaskItem{{ID: "k1", Title: "A"}, {ID: "k1", Title: "B"}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Replace(context.Background(), "t1", []domain.TaskItem{{ID: "k1", Title: " "}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskService_Replace_TripNotFound(t *testing.T) {
	svc := service.NewTaskService(tripMissing(), &mockTaskRepo{})

	_, err := svc.Replace(context.Background(), "nope", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
