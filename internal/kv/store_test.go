package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/kv"
	"github.com/alvesgeorge/PlanerTrip/testutil"
)

// backends returns one constructor per Store implementation. The Postgres
// entry skips itself when TEST_DATABASE_URL is not set.
func backends() map[string]func(t *testing.T) kv.Store {
	return map[string]func(t *testing.T) kv.Store{
		"memory":   func(t *testing.T) kv.Store { return kv.NewMemory() },
		"sqlite":   func(t *testing.T) kv.Store { return testutil.NewSQLiteStore(t) },
		"postgres": func(t *testing.T) kv.Store { return testutil.NewPostgresStore(t) },
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			v, ok, err := s.Get(context.Background(), "nope")

			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, "trips", `[{"id":"a"}]`))
			require.NoError(t, s.Set(ctx, "trips", `[]`))

			v, ok, err := s.Get(ctx, "trips")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[]`, v)
		})
	}
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, "current_trip_id", ""))

			_, ok, err := s.Get(ctx, "current_trip_id")
			require.NoError(t, err)
			assert.True(t, ok, "a key set to the empty string still exists")
		})
	}
}

func TestStore_DeleteMany(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			for _, k := range []string{"places_1", "events_1", "places_2"} {
				require.NoError(t, s.Set(ctx, k, "[]"))
			}

			require.NoError(t, s.Delete(ctx, "places_1", "events_1", "never_written"))

			keys, err := s.Keys(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"places_2"}, keys)
		})
	}
}

func TestStore_DeleteNothing(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			assert.NoError(t, s.Delete(context.Background()))
		})
	}
}

func TestStore_KeysPrefix(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			for _, k := range []string{"budget_1", "budget_item_1", "budgetX", "trips"} {
				require.NoError(t, s.Set(ctx, k, "0"))
			}

			keys, err := s.Keys(ctx, "budget_")
			require.NoError(t, err)
			// "_" is matched literally, so budgetX is excluded.
			assert.Equal(t, []string{"budget_1", "budget_item_1"}, keys)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/nested/dir/trips.db"

	s, err := kv.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "trips", `[{"id":"a"}]`))
	require.NoError(t, s.Close())

	s, err = kv.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	v, ok, err := s.Get(ctx, "trips")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}

func TestDefaultSQLitePath_UsesXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	path, err := kv.DefaultSQLitePath()

	require.NoError(t, err)
	assert.Equal(t, "/data/tripplanner/tripplanner.db", path)
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	mem, err := kv.Open(ctx, kv.DriverMemory, "ignored")
	require.NoError(t, err)
	assert.IsType(t, &kv.Memory{}, mem)
	require.NoError(t, mem.Close())

	lite, err := kv.Open(ctx, kv.DriverSQLite, filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.IsType(t, &kv.SQLite{}, lite)
	require.NoError(t, lite.Close())

	_, err = kv.Open(ctx, "mongo", "")
	assert.ErrorContains(t, err, `unknown driver "mongo"`)
}
