// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

// Package engine implements the personalization decision engine: the only
// component in the system with decision logic. It validates an incoming
// user record, obtains an engagement prediction from a pluggable
// PredictionProvider, applies a fixed threshold policy to choose between
// the provider's suggested action and the fallback action, and assembles
// a normalized Recommendation.
//
// The engine is a pure orchestration. It performs exactly one provider
// call per invocation, holds no mutable state, never retries, never
// caches, and never persists anything. It is safe for concurrent use
// provided the configured PredictionProvider is.
//
// # Components
//
//   - ValidateRecord: presence check for the six required record fields
//   - PredictionProvider: the single extension point; MockProvider is the
//     built-in implementation backed by a guarded rand source
//   - Decide: threshold policy (strictly greater than 0.70 keeps the
//     provider's suggestion, otherwise the fallback send_message)
//   - FormatRecommendation: canonical output assembly with two-decimal
//     score rounding
//   - Engine.Recommend: the orchestrated pipeline
//
// # Error Handling
//
// Validation failures surface as *InvalidRecordError, a typed error that
// carries the missing field names and is matchable with errors.As.
// Provider failures propagate unmodified; the engine adds no retry or
// backoff policy.
package engine
