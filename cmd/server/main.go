// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

// Package main is the entry point for the Persona server.
//
// Persona serves per-user action recommendations over HTTP. A user
// feature dataset (CSV) is loaded once at startup into a read-only
// store; each GET /recommend/{userID} request runs the decision engine
// over the stored record and returns the recommended action with its
// engagement score.
//
// # Startup Order
//
//  1. Configuration: Koanf v2 layered config (defaults, config.yaml,
//     environment variables)
//  2. Logging: zerolog, JSON or console output
//  3. Dataset: CSV load (or deterministic mock seeding when enabled)
//  4. Engine: decision engine bound to the mock prediction provider
//  5. HTTP server: chi router with CORS, rate limiting, request IDs,
//     and Prometheus instrumentation
//
// # Configuration
//
// See internal/config for the full surface. Quick start:
//
//	export DATASET_PATH=data/mock_user_data.csv
//	./persona
//
// Development without a dataset file:
//
//	export DATASET_SEED_MOCK=true
//	export LOGGING_FORMAT=console
//	./persona
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the server stops
// accepting connections and waits up to 10 seconds for in-flight
// requests to complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/persona/internal/api"
	"github.com/tomtom215/persona/internal/config"
	"github.com/tomtom215/persona/internal/dataset"
	"github.com/tomtom215/persona/internal/engine"
	"github.com/tomtom215/persona/internal/logging"
	"github.com/tomtom215/persona/internal/metrics"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		// Default logger: config (and its logging section) unavailable.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Persona")

	store, err := dataset.New(&cfg.Dataset, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	metrics.SetDatasetUsers(store.Len())

	provider := engine.NewMockProvider(cfg.Engine.ProviderSeed)
	eng, err := engine.NewEngine(provider, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create decision engine")
	}

	handler := api.NewHandler(eng, store, cfg)
	router := api.NewRouter(handler, &api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.API.RateLimitReqs,
		RateLimitWindow:    cfg.API.RateLimitWindow,
		RateLimitDisabled:  cfg.API.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
