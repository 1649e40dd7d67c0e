// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/persona/internal/dataset"
	"github.com/tomtom215/persona/internal/engine"
)

// userDetail is the response body for GET /api/v1/users/{userID}.
type userDetail struct {
	UserID              int           `json:"user_id"`
	Record              engine.Record `json:"record"`
	DaysSinceLastActive *int          `json:"days_since_last_active,omitempty"`
}

// User handles GET /api/v1/users/{userID}: the raw stored record plus
// the derived recency in days. Records with a missing or malformed
// last_active field are still returned; the derived field is simply
// omitted.
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	req, ok := parseUserRequest(w, r)
	if !ok {
		return
	}

	record, err := h.store.Get(req.UserID)
	if err != nil {
		if errors.Is(err, dataset.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	detail := userDetail{
		UserID: req.UserID,
		Record: record,
	}
	if days, err := record.DaysSinceLastActive(time.Now()); err == nil {
		detail.DaysSinceLastActive = &days
	}

	respondJSON(w, http.StatusOK, detail)
}
