// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package api

import (
	"time"

	"github.com/tomtom215/persona/internal/config"
	"github.com/tomtom215/persona/internal/dataset"
	"github.com/tomtom215/persona/internal/engine"
)

// Handler holds the collaborators the HTTP endpoints need: the decision
// engine, the read-only dataset store, and the loaded configuration.
type Handler struct {
	engine    *engine.Engine
	store     *dataset.Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(eng *engine.Engine, store *dataset.Store, cfg *config.Config) *Handler {
	return &Handler{
		engine:    eng,
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}
