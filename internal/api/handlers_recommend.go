// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/persona/internal/dataset"
	"github.com/tomtom215/persona/internal/engine"
	"github.com/tomtom215/persona/internal/logging"
	"github.com/tomtom215/persona/internal/metrics"
)

// Recommend handles GET /recommend/{userID}.
//
// Responses follow the consumed contract exactly:
//
//	200 {"user_id": 1, "action": "recommend_product", "engagement_score": 0.82}
//	404 {"error": "User not found"}
//	500 {"error": "..."} when a stored record fails validation
//
// A record that exists but is missing required fields is a defect in
// the server's dataset, not in the request, so it surfaces as 500.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	req, ok := parseUserRequest(w, r)
	if !ok {
		return
	}

	record, err := h.store.Get(req.UserID)
	if err != nil {
		if errors.Is(err, dataset.ErrUserNotFound) {
			metrics.RecordUserNotFound()
			respondError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	rec, err := h.engine.Recommend(r.Context(), record)
	if err != nil {
		var invalid *engine.InvalidRecordError
		if errors.As(err, &invalid) {
			metrics.RecordInvalidRecord()
			logging.Ctx(r.Context()).Error().
				Int("user_id", req.UserID).
				Strs("missing_fields", invalid.Missing).
				Msg("Stored record failed validation")
			respondError(w, http.StatusInternalServerError, "User record is invalid", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Recommendation failed", err)
		return
	}

	// At or below the threshold the policy always substituted the
	// fallback action, so the score alone identifies fallbacks.
	fallback := rec.EngagementScore <= engine.FallbackThreshold
	metrics.RecordRecommendation(string(rec.Action), rec.EngagementScore, fallback)
	respondJSON(w, http.StatusOK, rec)
}
