// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"net/http"
	"time"
)

// healthStatus is the response body for GET /api/v1/health.
type healthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetLoaded bool    `json:"dataset_loaded"`
	DatasetUsers  int     `json:"dataset_users"`
	DatasetSource string  `json:"dataset_source,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Version is the reported application version.
const Version = "1.0.0"

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	status := "healthy"
	loaded := h.store != nil && h.store.Len() > 0
	if !loaded {
		status = "degraded"
	}

	body := healthStatus{
		Status:        status,
		Version:       Version,
		DatasetLoaded: loaded,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.store != nil {
		body.DatasetUsers = h.store.Len()
		body.DatasetSource = h.store.Source()
	}

	respondJSON(w, http.StatusOK, body)
}

// HealthLive handles GET /api/v1/health/live: a liveness probe that
// reports 200 whenever the process is running, regardless of state.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready: a readiness probe that
// reports 200 only once the dataset store has records to serve.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if h.store == nil || h.store.Len() == 0 {
		respondError(w, http.StatusServiceUnavailable, "Dataset not loaded", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
