// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Action identifies a recommended interaction with a user.
// The set of actions is closed; ActionSendMessage doubles as the
// universal fallback when prediction confidence is insufficient.
type Action string

const (
	// ActionOfferDiscount offers the user a discount.
	ActionOfferDiscount Action = "offer_discount"
	// ActionRecommendProduct recommends a product to the user.
	ActionRecommendProduct Action = "recommend_product"
	// ActionSendMessage sends the user a re-engagement message.
	// This is also the fallback action for low-confidence predictions.
	ActionSendMessage Action = "send_message"
)

// Actions returns the closed action enumeration.
// The returned slice is a fresh copy; callers may reorder it.
func Actions() []Action {
	return []Action{ActionOfferDiscount, ActionRecommendProduct, ActionSendMessage}
}

// Valid reports whether a is a member of the action enumeration.
func (a Action) Valid() bool {
	switch a {
	case ActionOfferDiscount, ActionRecommendProduct, ActionSendMessage:
		return true
	default:
		return false
	}
}

// Record is a user feature record: a mapping of field name to raw value
// as produced by the tabular data source. The engine treats records as
// immutable and only ever checks field presence; value plausibility is
// not its concern.
type Record map[string]string

// lastActiveLayout is the expected calendar date format of the
// last_active field (ISO 8601 date).
const lastActiveLayout = "2006-01-02"

// UserID parses the record's user_id field as a positive integer.
func (r Record) UserID() (int, error) {
	raw, ok := r[FieldUserID]
	if !ok {
		return 0, fmt.Errorf("record has no %s field", FieldUserID)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", FieldUserID, raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s %d: must be positive", FieldUserID, id)
	}
	return id, nil
}

// LastActive parses the record's last_active field as a calendar date.
func (r Record) LastActive() (time.Time, error) {
	raw, ok := r[FieldLastActive]
	if !ok {
		return time.Time{}, fmt.Errorf("record has no %s field", FieldLastActive)
	}
	t, err := time.Parse(lastActiveLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD: %w", FieldLastActive, raw, err)
	}
	return t, nil
}

// DaysSinceLastActive returns the number of whole days between the
// record's last_active date and now.
func (r Record) DaysSinceLastActive(now time.Time) (int, error) {
	last, err := r.LastActive()
	if err != nil {
		return 0, err
	}
	return int(now.Sub(last).Hours() / 24), nil
}

// Prediction is the output of a PredictionProvider: an engagement score
// in [0,1] rounded to two decimals, and a suggested action from the
// action enumeration. Predictions are created fresh per call and never
// persisted.
type Prediction struct {
	EngagementScore float64 `json:"engagement_score"`
	SuggestedAction Action  `json:"suggested_action"`
}

// Recommendation is the engine's sole output type: the final action for
// a user together with the engagement score that drove the decision.
// Immutable once constructed.
type Recommendation struct {
	UserID          int     `json:"user_id"`
	Action          Action  `json:"action"`
	EngagementScore float64 `json:"engagement_score"`
}

// roundScore rounds an engagement score to two decimal places.
// Idempotent for already-rounded values.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
