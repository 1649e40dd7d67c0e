// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/persona/internal/config"
	"github.com/tomtom215/persona/internal/dataset"
	"github.com/tomtom215/persona/internal/engine"
)

const testCSV = `user_id,age,gender,last_active,interactions,purchases
1,25,M,2025-08-10,15,2
2,31,F,2025-07-22,4,0
3,19,F,2025-08-01,52,
`

// stubProvider returns a fixed prediction.
type stubProvider struct {
	prediction engine.Prediction
	err        error
}

func (s *stubProvider) Predict(_ context.Context, _ engine.Record) (engine.Prediction, error) {
	if s.err != nil {
		return engine.Prediction{}, s.err
	}
	return s.prediction, nil
}

// newTestRouter builds a full router over the test CSV with the given
// provider. Rate limiting is disabled so tests can hammer endpoints.
func newTestRouter(t *testing.T, provider engine.PredictionProvider) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}

	store, err := dataset.New(&config.DatasetConfig{Path: path}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to build dataset store: %v", err)
	}

	eng, err := engine.NewEngine(provider, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to build engine: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, Timeout: 30 * time.Second},
	}
	handler := NewHandler(eng, store, cfg)

	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.RateLimitDisabled = true
	return NewRouter(handler, mwConfig).Setup()
}
