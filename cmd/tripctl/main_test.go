package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
	"github.com/alvesgeorge/PlanerTrip/internal/kv"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
)

// memoryOpener hands every command the same repository over one memory
// store, so state persists across invocations within a test.
func memoryOpener(t *testing.T) (opener, kv.Store) {
	t.Helper()
	store := kv.NewMemory()
	n := 0
	r := repo.New(store, repo.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	return func(context.Context) (*repo.Repository, error) { return r, nil }, store
}

// run executes tripctl with args and returns stdout.
func run(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(context.Background(), open, args, &out, &bytes.Buffer{})
	return out.String(), err
}

func seedTrips(t *testing.T, open opener) {
	t.Helper()
	r, err := open(context.Background())
	require.NoError(t, err)
	budget := decimal.NewFromInt(3000)
	require.NoError(t, r.SaveTrip(context.Background(), domain.Trip{
		ID: "paris", Name: "Paris Trip", Destination: "Paris", StartDate: "01/06/2025", EndDate: "10/06/2025", Budget: &budget,
	}))
	require.NoError(t, r.SaveTrip(context.Background(), domain.Trip{
		ID: "rio", Name: "Carnaval", Destination: "Rio de Janeiro",
	}))
	require.NoError(t, r.SaveExpense(context.Background(), "paris", domain.ExpenseItem{
		ID: "x1", Title: "Dinner", Amount: decimal.RequireFromString("35.5"), Category: "Food",
	}))
}

func TestTripsList(t *testing.T) {
	open, _ := memoryOpener(t)
	seedTrips(t, open)

	out, err := run(t, open, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris Trip")
	assert.Contains(t, out, "Carnaval")
	assert.Contains(t, out, "3000.00")

	out, err = run(t, open, "trips", "list", "-q", "rio")
	require.NoError(t, err)
	assert.Contains(t, out, "Carnaval")
	assert.NotContains(t, out, "Paris Trip")
}

func TestTripsList_ShowsLocation(t *testing.T) {
	open, _ := memoryOpener(t)
	r, err := open(context.Background())
	require.NoError(t, err)
	require.NoError(t, r.SaveTrip(context.Background(), domain.Trip{
		ID: "lis", Name: "Lisbon", Destination: "Lisboa",
		SelectedCity: &domain.City{Name: "Lisbon", Country: "Portugal", CountryCode: "PT"},
	}))

	out, err := run(t, open, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "LOCATION")
	assert.Contains(t, out, "Lisbon, Portugal")
}

func TestEvents_ByDate(t *testing.T) {
	open, _ := memoryOpener(t)
	seedTrips(t, open)
	r, err := open(context.Background())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, r.SaveEvent(ctx, "paris", domain.EventItem{
		ID: "e1", Title: "Louvre", Date: "02/06/2025", StartTime: "10:00", EndTime: "13:00", Category: "Evento",
	}))
	require.NoError(t, r.SaveEvent(ctx, "paris", domain.EventItem{
		ID: "e2", Title: "Seine cruise", Date: "03/06/2025", StartTime: "19:00", Completed: true,
	}))

	out, err := run(t, open, "events", "paris", "--date", "02/06/2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Louvre")
	assert.Contains(t, out, "10:00 - 13:00")
	assert.NotContains(t, out, "Seine cruise")

	out, err = run(t, open, "events", "paris")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "from 19:00")

	out, err = run(t, open, "events", "paris", "-d", "01/01/2030")
	require.NoError(t, err)
	assert.Equal(t, "no events\n", out)
}

func TestTripsCurrent(t *testing.T) {
	open, _ := memoryOpener(t)
	seedTrips(t, open)

	_, err := run(t, open, "trips", "current")
	require.ErrorIs(t, err, domain.ErrNotFound, "no trip is selected implicitly")

	out, err := run(t, open, "trips", "use", "rio")
	require.NoError(t, err)
	assert.Equal(t, "current trip: Carnaval (rio)\n", out)

	out, err = run(t, open, "trips", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Carnaval")

	_, err = run(t, open, "trips", "use", "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = run(t, open, "trips", "unset")
	require.NoError(t, err)
	_, err = run(t, open, "trips", "current")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripsDeleteAndStats(t *testing.T) {
	open, store := memoryOpener(t)
	seedTrips(t, open)

	out, err := run(t, open, "trips", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "trips: 2")
	assert.Contains(t, out, "total budget: 3000.00")

	_, err = run(t, open, "trips", "delete", "paris")
	require.NoError(t, err)

	keys, err := store.Keys(context.Background(), "expenses_")
	require.NoError(t, err)
	assert.Empty(t, keys, "child partitions go with the trip")
}

func TestExport_JSON(t *testing.T) {
	open, _ := memoryOpener(t)
	seedTrips(t, open)

	out, err := run(t, open, "export")
	require.NoError(t, err)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Len(t, snap.Trips, 2)
	assert.Equal(t, "paris", snap.Trips[0].Trip.ID)
	require.Len(t, snap.Trips[0].Expenses, 1)
}

func TestExport_CSVToFile(t *testing.T) {
	open, _ := memoryOpener(t)
	seedTrips(t, open)
	path := filepath.Join(t.TempDir(), "trips.csv")

	_, err := run(t, open, "export", "--format", "csv", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header, one expense row, one bare trip row")
	assert.Equal(t, "expense", records[1][5])
	assert.Equal(t, "35.50", records[1][9])
}

func TestExport_BadFormat(t *testing.T) {
	open, _ := memoryOpener(t)

	_, err := run(t, open, "export", "--format", "xml")
	require.ErrorContains(t, err, "--format must be json or csv")
}

func TestMigrateLegacy(t *testing.T) {
	open, store := memoryOpener(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "trip_list", "Paris Trip|Paris|01/06/2025|10/06/2025|3000|museums;broken|record"))

	out, err := run(t, open, "migrate-legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "trips added: 1")
	assert.Contains(t, out, "skipped trip records: 1")

	out, err = run(t, open, "migrate-legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "trips added: 0", "a second run changes nothing")
}

func TestClear(t *testing.T) {
	open, store := memoryOpener(t)
	seedTrips(t, open)

	_, err := run(t, open, "clear")
	require.ErrorContains(t, err, "--yes")

	_, err = run(t, open, "clear", "--yes")
	require.NoError(t, err)
	keys, err := store.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// closeCountingStore records how often the repository closed it.
type closeCountingStore struct {
	*kv.Memory
	closed int
}

func (s *closeCountingStore) Close() error {
	s.closed++
	return nil
}

func TestExecute_ClosesStoreWhenCommandFails(t *testing.T) {
	store := &closeCountingStore{Memory: kv.NewMemory()}
	open := func(context.Context) (*repo.Repository, error) { return repo.New(store), nil }

	_, err := run(t, open, "trips", "use", "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, store.closed)

	_, err = run(t, open, "trips", "list")
	require.NoError(t, err)
	assert.Equal(t, 2, store.closed)
}
