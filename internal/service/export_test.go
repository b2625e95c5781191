package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

func snapshotRepo(trips ...domain.TripExport) *mockExportRepo {
	return &mockExportRepo{
		export: func(context.Context) (domain.Snapshot, error) {
			return domain.Snapshot{ExportedAt: domain.Now(), Trips: trips}, nil
		},
	}
}

func TestExportService_Rows_TripWithoutRecords(t *testing.T) {
	svc := service.NewExportService(snapshotRepo(domain.TripExport{
		Trip: domain.Trip{ID: "t1", Name: "Paris Trip", Destination: "Paris", StartDate: "01/06/2025"},
	}))

	rows, err := svc.Rows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paris Trip", rows[0].TripName)
	assert.Equal(t, "01/06/2025", rows[0].TripStartDate)
	assert.Empty(t, rows[0].Kind)
}

func TestExportService_Rows_OneRowPerRecord(t *testing.T) {
	svc := service.NewExportService(snapshotRepo(
		domain.TripExport{
			Trip:     domain.Trip{ID: "t1", Name: "Paris Trip"},
			Places:   []domain.PlaceItem{{ID: "p1", Name: "Louvre", Day: "Day 1", Cost: decimal.NewFromInt(17)}},
			Events:   []domain.EventItem{{ID: "e1", Title: "Opera", Date: "02/06"}},
			Expenses: []domain.ExpenseItem{{ID: "x1", Title: "Taxi", Amount: decimal.RequireFromString("12.5")}},
			Tasks:    []domain.TaskItem{{ID: "k1", Title: "Visa"}},
		},
		domain.TripExport{Trip: domain.Trip{ID: "t2", Name: "Empty"}},
	))

	rows, err := svc.Rows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 5)
	kinds := []string{rows[0].Kind, rows[1].Kind, rows[2].Kind, rows[3].Kind, rows[4].Kind}
	assert.Equal(t, []string{"place", "event", "expense", "task", ""}, kinds)
	assert.Equal(t, "17.00", rows[0].Amount)
	assert.Equal(t, "12.50", rows[2].Amount)
	assert.Empty(t, rows[1].Amount)
	for _, r := range rows[:4] {
		assert.Equal(t, "t1", r.TripID, "trip fields repeat on every child row")
	}
}

func TestExportService_Rows_Empty(t *testing.T) {
	svc := service.NewExportService(snapshotRepo())

	rows, err := svc.Rows(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Snapshot_Error(t *testing.T) {
	storeErr := errors.New("offline")
	svc := service.NewExportService(&mockExportRepo{
		export: func(context.Context) (domain.Snapshot, error) { return domain.Snapshot{}, storeErr },
	})

	_, err := svc.Snapshot(context.Background())

	assert.ErrorIs(t, err, storeErr)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []domain.ExportRow{{
		TripID: "t1", TripName: "Paris Trip", Kind: "expense", ItemID: "x1",
		Title: `Dinner "Le Train Bleu", 2 people`, Day: "2025-06-02", Amount: "35.50",
	}}

	require.NoError(t, service.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, service.CSVHeader, records[0])
	assert.Equal(t, `Dinner "Le Train Bleu", 2 people`, records[1][7])
	assert.Equal(t, "35.50", records[1][9])
}
