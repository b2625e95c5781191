package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/config"
)

// clearEnv unsets every variable Load reads so the host environment does not
// leak into a test. t.Setenv first so the originals are restored on cleanup;
// unset rather than empty so a .env file may still supply them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "STORE_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"CORS_ORIGINS", "MAX_BODY_BYTES", "CITY_API_KEY", "CITY_API_URL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}

// TestLoad_defaults verifies that every variable falls back to its default
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	require.Empty(t, cfg.SQLitePath)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Empty(t, cfg.CityAPIKey)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/mydb")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("CITY_API_KEY", "secret")
	t.Setenv("CITY_API_URL", "http://localhost:9999/v1/geo/")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	require.Equal(t, "postgres://user:pass@db:5432/mydb", cfg.DatabaseURL)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
	require.Equal(t, "secret", cfg.CityAPIKey)
	require.Equal(t, "http://localhost:9999/v1/geo/", cfg.CityAPIURL)
}

// TestLoad_missingRequired verifies that the postgres driver requires
// DATABASE_URL and that the error message names the missing variable.
func TestLoad_missingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

// TestLoad_invalidValues verifies that every invalid variable is named.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MAX_BODY_BYTES", "-5")
	t.Setenv("PORT", "http")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "STORE_DRIVER")
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
	require.ErrorContains(t, err, "PORT")
}

// TestLoad_dotenv verifies that a .env file in the working directory is read
// and that real environment variables take precedence over it.
func TestLoad_dotenv(t *testing.T) {
	clearEnv(t)
	dir, err := os.Getwd()
	require.NoError(t, err)
	env := "STORE_DRIVER=memory\nLOG_LEVEL=warn\nCITY_API_KEY=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, config.DriverMemory, cfg.StoreDriver)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, "from-file", cfg.CityAPIKey)
}

// TestConfig_StoreSource verifies which value is handed to the store opener.
func TestConfig_StoreSource(t *testing.T) {
	pg := config.Config{StoreDriver: config.DriverPostgres, DatabaseURL: "postgres://x", SQLitePath: "/tmp/a.db"}
	require.Equal(t, "postgres://x", pg.StoreSource())

	lite := config.Config{StoreDriver: config.DriverSQLite, DatabaseURL: "postgres://x", SQLitePath: "/tmp/a.db"}
	require.Equal(t, "/tmp/a.db", lite.StoreSource())
}
