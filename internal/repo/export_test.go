package repo_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func TestRepository_Export_Empty(t *testing.T) {
	r, _ := newTestRepo(t)

	snap, err := r.Export(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, snap.Trips)
	assert.Empty(t, snap.Trips)
	assert.False(t, snap.ExportedAt.IsZero())
}

func TestRepository_Export_NestsPartitions(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		seedTrip(t, r, id)
	}
	require.NoError(t, r.SavePlace(ctx, "b", placeFixture("p1")))
	require.NoError(t, r.SaveEvent(ctx, "b", domain.EventItem{ID: "ev1", Title: "Opera"}))
	require.NoError(t, r.SaveExpense(ctx, "b", domain.ExpenseItem{ID: "x1", Amount: decimal.NewFromInt(12)}))
	require.NoError(t, r.SaveTask(ctx, "b", domain.TaskItem{ID: "t1", Title: "Visa"}))
	require.NoError(t, r.SaveBudget(ctx, "b", decimal.NewFromInt(900)))
	require.NoError(t, r.SaveBudgetItem(ctx, "b", domain.BudgetItem{TotalBudget: decimal.NewFromInt(900)}))

	snap, err := r.Export(ctx)
	require.NoError(t, err)

	require.Len(t, snap.Trips, 6)
	for i, id := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.Equal(t, id, snap.Trips[i].Trip.ID, "trip order must be preserved")
	}

	b := snap.Trips[1]
	assert.Len(t, b.Places, 1)
	assert.Len(t, b.Events, 1)
	assert.Len(t, b.Expenses, 1)
	assert.Len(t, b.Tasks, 1)
	assert.True(t, b.Budget.Equal(decimal.NewFromInt(900)))
	require.NotNil(t, b.BudgetItem)

	a := snap.Trips[0]
	assert.NotNil(t, a.Places)
	assert.Empty(t, a.Places)
	assert.Nil(t, a.BudgetItem)
	assert.True(t, a.Budget.IsZero())
}

func TestRepository_Export_JSONHasArrays(t *testing.T) {
	r, _ := newTestRepo(t)
	seedTrip(t, r, "a")

	snap, err := r.Export(context.Background())
	require.NoError(t, err)

	b, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded struct {
		Trips []map[string]json.RawMessage `json:"trips"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.Trips, 1)
	for _, field := range []string{"places", "events", "expenses", "tasks"} {
		assert.JSONEq(t, "[]", string(decoded.Trips[0][field]), field)
	}
}
