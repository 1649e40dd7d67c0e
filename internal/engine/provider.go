// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// PredictionProvider is the single extension point of the engine: the
// capability that turns a validated user record into an engagement
// prediction. A real backend (a model-serving client) must satisfy the
// same contract as the built-in mock: one call, one well-formed
// Prediction or a distinguishable error, no shared mutable state visible
// to callers, safe for concurrent use.
//
// The engine never retries a provider call; retry and backoff policy, if
// wanted, belongs to the provider implementation or a wrapper around it.
type PredictionProvider interface {
	// Predict returns an engagement prediction for the record. The
	// record is guaranteed to have passed ValidateRecord. The context
	// is for implementations that perform I/O; in-process providers may
	// ignore it.
	Predict(ctx context.Context, r Record) (Prediction, error)
}

// MockProvider simulates a prediction backend. Each call is an
// independent trial: the engagement score is drawn uniformly from [0,1]
// and rounded to two decimals, the suggested action uniformly from the
// action enumeration. Record fields are ignored. Predict never fails.
//
// The rand source is mutex-guarded so concurrent draws do not correlate
// or corrupt each other. Safe for concurrent use.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockProvider creates a mock provider. A non-zero seed produces a
// deterministic draw sequence, useful in tests and CI; seed 0 seeds from
// the clock.
func NewMockProvider(seed int64) *MockProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockProvider{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for mock predictions
	}
}

// Predict implements PredictionProvider.
func (p *MockProvider) Predict(_ context.Context, _ Record) (Prediction, error) {
	p.mu.Lock()
	score := p.rng.Float64()
	action := p.rng.Intn(len(mockActions))
	p.mu.Unlock()

	return Prediction{
		EngagementScore: roundScore(score),
		SuggestedAction: mockActions[action],
	}, nil
}

// mockActions is the draw pool for the mock provider. Index order is
// fixed so a seeded provider replays the same sequence.
var mockActions = []Action{ActionOfferDiscount, ActionRecommendProduct, ActionSendMessage}
