// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

import "testing"

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  Action
	}{
		{name: "high_confidence_keeps_suggestion", score: 0.82, want: ActionRecommendProduct},
		{name: "low_confidence_falls_back", score: 0.45, want: ActionSendMessage},
		{name: "exact_threshold_falls_back", score: 0.70, want: ActionSendMessage},
		{name: "just_above_threshold_keeps_suggestion", score: 0.71, want: ActionRecommendProduct},
		{name: "zero_falls_back", score: 0, want: ActionSendMessage},
		{name: "one_keeps_suggestion", score: 1, want: ActionRecommendProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Decide(Prediction{
				EngagementScore: tt.score,
				SuggestedAction: ActionRecommendProduct,
			})
			if got != tt.want {
				t.Errorf("Decide(score=%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestDecideFallbackSuggestionStaysFallback(t *testing.T) {
	t.Parallel()

	// A confident send_message suggestion passes through unchanged.
	got := Decide(Prediction{EngagementScore: 0.95, SuggestedAction: ActionSendMessage})
	if got != ActionSendMessage {
		t.Errorf("Decide() = %q, want %q", got, ActionSendMessage)
	}
}
