// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/alvesgeorge/PlanerTrip/apidoc"
	"github.com/alvesgeorge/PlanerTrip/internal/citysearch"
	"github.com/alvesgeorge/PlanerTrip/internal/config"
	"github.com/alvesgeorge/PlanerTrip/internal/handler"
	"github.com/alvesgeorge/PlanerTrip/internal/kv"
	"github.com/alvesgeorge/PlanerTrip/internal/middleware"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// os.Exit skips deferred calls; run closes the store before returning.
	if err := run(cfg, logger); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// run opens the store, serves until SIGINT or SIGTERM, then shuts down and
// closes the store.
func run(cfg config.Config, logger *slog.Logger) error {
	// --- Store ------------------------------------------------------------
	// Opening a SQL backend also applies pending goose migrations.
	store, err := kv.Open(context.Background(), cfg.StoreDriver, cfg.StoreSource())
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	trips := repo.New(store, repo.WithLogger(logger))
	defer func() {
		if err := trips.Close(); err != nil {
			slog.Error("close store", "error", err)
		}
	}()
	slog.Info("store ready", "driver", cfg.StoreDriver)

	// --- Services ---------------------------------------------------------
	services := handler.Services{
		Trips:    service.NewTripService(trips),
		Places:   service.NewPlaceService(trips, trips),
		Events:   service.NewEventService(trips, trips),
		Expenses: service.NewExpenseService(trips, trips),
		Tasks:    service.NewTaskService(trips, trips),
		Budgets:  service.NewBudgetService(trips, trips, trips),
		Export:   service.NewExportService(trips),
		Cities:   newCitySearch(cfg, logger),
		OpenAPI:  apidoc.OpenAPI,
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(services, logger).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// The write timeout leaves room for a remote city lookup (15s) to fall back.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal or a listener failure, then give
	// in-flight requests up to 15 seconds to complete.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	serveErr := make(chan error, 1)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-stop:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newCitySearch returns the offline list, backed by GeoDB when an API key is configured.
func newCitySearch(cfg config.Config, logger *slog.Logger) citysearch.Provider {
	if cfg.CityAPIKey == "" {
		return citysearch.NewFallback(nil, logger)
	}
	baseURL := cfg.CityAPIURL
	if baseURL == "" {
		baseURL = citysearch.DefaultGeoDBURL
	}
	geo, err := citysearch.NewGeoDB(baseURL, cfg.CityAPIKey)
	if err != nil {
		slog.Warn("city search: remote provider disabled", "error", err)
		return citysearch.NewFallback(nil, logger)
	}
	return citysearch.NewFallback(geo, logger)
}
