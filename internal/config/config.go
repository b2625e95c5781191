// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alvesgeorge/PlanerTrip/internal/kv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverSQLite   = kv.DriverSQLite
	DriverPostgres = kv.DriverPostgres
	DriverMemory   = kv.DriverMemory
)

// DefaultMaxBodyBytes caps request bodies at 1 MiB.
const DefaultMaxBodyBytes int64 = 1 << 20

// Config holds all configuration values for the API server and CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// StoreDriver selects the key-value backend: sqlite (default), postgres or memory.
	StoreDriver string

	// DatabaseURL is the Postgres connection string. Required when StoreDriver is postgres.
	DatabaseURL string

	// SQLitePath is the database file for the sqlite driver. Empty means the
	// per-user default location.
	SQLitePath string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes limits request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64

	// CityAPIKey enables remote city search when set.
	CityAPIKey string

	// CityAPIURL overrides the remote city search base URL.
	CityAPIURL string
}

// Load reads an optional .env file from the working directory, then
// configuration from environment variables. Variables already set in the
// environment win over the file. Returns an error naming every missing or
// invalid variable.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: reading .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		CityAPIKey:  os.Getenv("CITY_API_KEY"),
		CityAPIURL:  os.Getenv("CITY_API_URL"),
	}

	var missing, invalid []string

	switch cfg.StoreDriver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		invalid = append(invalid, "STORE_DRIVER")
	}

	cfg.MaxBodyBytes = DefaultMaxBodyBytes
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			invalid = append(invalid, "MAX_BODY_BYTES")
		} else {
			cfg.MaxBodyBytes = n
		}
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		invalid = append(invalid, "PORT")
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// StoreSource returns the argument kv.Open expects for the configured driver.
func (c Config) StoreSource() string {
	if c.StoreDriver == DriverPostgres {
		return c.DatabaseURL
	}
	return c.SQLitePath
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
