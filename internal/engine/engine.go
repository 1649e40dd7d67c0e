// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Engine orchestrates the decision pipeline for one user record:
// validation, prediction, threshold policy, output formatting. It holds
// a reference to exactly one PredictionProvider for its lifetime, set at
// construction, and is otherwise stateless: safe to share across
// concurrent invocations.
type Engine struct {
	provider PredictionProvider
	logger   zerolog.Logger
}

// NewEngine creates a decision engine bound to the given provider.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(provider PredictionProvider, logger zerolog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("prediction provider is required")
	}
	return &Engine{
		provider: provider,
		logger:   logger.With().Str("component", "engine").Logger(),
	}, nil
}

// Recommend produces a recommendation for one user record.
//
// The pipeline is strictly linear and synchronous: validate, predict
// (exactly one provider call), decide, format. On validation failure it
// returns *InvalidRecordError; provider failures propagate wrapped but
// unmodified in kind. No partial Recommendation is ever returned.
func (e *Engine) Recommend(ctx context.Context, r Record) (Recommendation, error) {
	if missing := missingFields(r); len(missing) > 0 {
		return Recommendation{}, &InvalidRecordError{Missing: missing}
	}

	userID, err := r.UserID()
	if err != nil {
		// Present but malformed user_id. Presence validation passed, so
		// this surfaces as the same typed failure with a cause attached.
		return Recommendation{}, &InvalidRecordError{Cause: err}
	}

	pred, err := e.provider.Predict(ctx, r)
	if err != nil {
		return Recommendation{}, fmt.Errorf("prediction for user %d failed: %w", userID, err)
	}

	rec := FormatRecommendation(userID, Decide(pred), pred.EngagementScore)

	e.logger.Debug().
		Int("user_id", rec.UserID).
		Str("action", string(rec.Action)).
		Float64("engagement_score", rec.EngagementScore).
		Bool("fallback", rec.Action != pred.SuggestedAction).
		Msg("Recommendation produced")

	return rec, nil
}
