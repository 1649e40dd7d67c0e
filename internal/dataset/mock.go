// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package dataset

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/tomtom215/persona/internal/engine"
)

// mockSeed fixes the mock dataset so CI runs and screenshots are
// reproducible across processes.
const mockSeed = 42

// mockBaseDate anchors generated last_active dates.
var mockBaseDate = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

// seedMockUsers generates n deterministic user records with user_ids
// 1..n. Used when no CSV exists and mock seeding is enabled.
func seedMockUsers(n int) map[int]engine.Record {
	rng := rand.New(rand.NewSource(mockSeed)) //nolint:gosec // deterministic mock data
	genders := []string{"M", "F"}

	users := make(map[int]engine.Record, n)
	for id := 1; id <= n; id++ {
		lastActive := mockBaseDate.AddDate(0, 0, -rng.Intn(90))
		users[id] = engine.Record{
			engine.FieldUserID:       strconv.Itoa(id),
			engine.FieldAge:          strconv.Itoa(18 + rng.Intn(50)),
			engine.FieldGender:       genders[rng.Intn(len(genders))],
			engine.FieldLastActive:   lastActive.Format("2006-01-02"),
			engine.FieldInteractions: strconv.Itoa(rng.Intn(100)),
			engine.FieldPurchases:    strconv.Itoa(rng.Intn(20)),
		}
	}
	return users
}
