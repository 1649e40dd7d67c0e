// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/persona/internal/engine"
)

// datasetStats is the response body for GET /api/v1/stats.
type datasetStats struct {
	Users         int       `json:"users"`
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
	Actions       []string  `json:"actions"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// Stats handles GET /api/v1/stats: dataset shape and the action
// enumeration the engine decides over. Per-action recommendation counts
// live in /metrics.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	actions := engine.Actions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}

	respondJSON(w, http.StatusOK, datasetStats{
		Users:         h.store.Len(),
		Source:        h.store.Source(),
		LoadedAt:      h.store.LoadedAt(),
		Actions:       names,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
