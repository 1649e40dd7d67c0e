// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

// FallbackThreshold is the engagement score a prediction must strictly
// exceed for its suggested action to be kept. The comparison is strict:
// a score of exactly 0.70 falls back. Behavioral compatibility depends
// on this tie-break, so the threshold is a closed design constant, not
// configuration.
const FallbackThreshold = 0.7

// Decide maps a prediction to the final action: the provider's
// suggestion when the score strictly exceeds FallbackThreshold, the
// fallback ActionSendMessage otherwise. Pure function.
func Decide(p Prediction) Action {
	if p.EngagementScore > FallbackThreshold {
		return p.SuggestedAction
	}
	return ActionSendMessage
}
