// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

// Package dataset provides the read-only user record store. The tabular
// data source (CSV) is loaded once at process start into a lookup keyed
// by user_id and never mutated afterwards, so concurrent reads from
// in-flight requests need no locking.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/persona/internal/config"
	"github.com/tomtom215/persona/internal/engine"
)

// ErrUserNotFound indicates a user_id with no corresponding record.
var ErrUserNotFound = errors.New("user not found")

// Store is an immutable in-memory user record lookup.
type Store struct {
	users    map[int]engine.Record
	source   string
	loadedAt time.Time
}

// New builds a store from the configured source: the CSV file when it
// exists, otherwise a deterministic mock dataset when seeding is
// enabled.
func New(cfg *config.DatasetConfig, logger zerolog.Logger) (*Store, error) {
	logger = logger.With().Str("component", "dataset").Logger()

	f, err := os.Open(cfg.Path)
	switch {
	case err == nil:
		defer f.Close() //nolint:errcheck // read-only handle
		users, skipped, err := readCSV(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset %s: %w", cfg.Path, err)
		}
		if skipped > 0 {
			logger.Warn().Int("skipped", skipped).Str("path", cfg.Path).Msg("Skipped rows without a usable user_id")
		}
		logger.Info().Int("users", len(users)).Str("path", cfg.Path).Msg("Dataset loaded")
		return &Store{users: users, source: cfg.Path, loadedAt: time.Now()}, nil

	case os.IsNotExist(err) && cfg.SeedMock:
		users := seedMockUsers(cfg.SeedUsers)
		logger.Info().Int("users", len(users)).Msg("Dataset seeded with mock users")
		return &Store{users: users, source: "mock", loadedAt: time.Now()}, nil

	default:
		return nil, fmt.Errorf("failed to open dataset %s: %w", cfg.Path, err)
	}
}

// readCSV parses rows into records keyed by user_id. Empty cells load
// as absent fields so incomplete rows surface as validation failures at
// recommend time, not load time. Rows whose user_id cell is missing or
// non-numeric are unloadable and counted as skipped.
func readCSV(r io.Reader) (map[int]engine.Record, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}

	hasUserID := false
	for _, col := range header {
		if col == engine.FieldUserID {
			hasUserID = true
			break
		}
	}
	if !hasUserID {
		return nil, 0, fmt.Errorf("header has no %s column", engine.FieldUserID)
	}

	users := make(map[int]engine.Record)
	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read row: %w", err)
		}

		rec := make(engine.Record, len(header))
		for i, col := range header {
			if i < len(row) && row[i] != "" {
				rec[col] = row[i]
			}
		}

		id, err := rec.UserID()
		if err != nil {
			skipped++
			continue
		}
		users[id] = rec
	}

	return users, skipped, nil
}

// Get returns the record for a user_id, or ErrUserNotFound.
func (s *Store) Get(userID int) (engine.Record, error) {
	rec, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	return rec, nil
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.users)
}

// IDs returns the loaded user IDs in ascending order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Source describes where the records came from: the CSV path, or
// "mock" for a seeded dataset.
func (s *Store) Source() string {
	return s.source
}

// LoadedAt returns when the store was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}
