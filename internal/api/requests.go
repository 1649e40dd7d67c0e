// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/persona/internal/validation"
)

// userRequest is the validated form of a {userID} path parameter.
type userRequest struct {
	UserID int `validate:"required,min=1"`
}

// parseUserRequest extracts and validates the userID path parameter.
// Returns false after writing a 400 response when the parameter is not
// a positive integer.
func parseUserRequest(w http.ResponseWriter, r *http.Request) (userRequest, bool) {
	raw := chi.URLParam(r, "userID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID", err)
		return userRequest{}, false
	}

	req := userRequest{UserID: id}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID", verr)
		return userRequest{}, false
	}
	return req, true
}
