// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

// FormatRecommendation assembles the canonical three-field output
// record. The score is re-rounded to two decimals, which is idempotent
// for scores that already are. No validation happens here: by contract
// this is only invoked with already-valid inputs.
func FormatRecommendation(userID int, action Action, score float64) Recommendation {
	return Recommendation{
		UserID:          userID,
		Action:          action,
		EngagementScore: roundScore(score),
	}
}
