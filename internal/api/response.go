// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

// Package api provides the HTTP boundary around the decision engine.
//
// The recommendation endpoint keeps exact wire compatibility with the
// consumed contract: a 200 response is the serialized Recommendation
// itself and error responses are flat {"error": "..."} objects, with no
// envelope around either.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/persona/internal/logging"
)

// errorResponse is the error body shape for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes a flat {"error": message} body. A non-nil err is
// logged but never exposed to the client.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logging.Error().Int("status", status).Err(err).Msg("API error")
	}
	respondJSON(w, status, errorResponse{Error: message})
}
