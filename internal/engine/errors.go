// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is the sentinel for validation failures. Every
// *InvalidRecordError matches it via errors.Is, so callers can branch
// on the failure kind without inspecting the detail.
var ErrInvalidRecord = errors.New("invalid user record")

// InvalidRecordError reports a record that failed validation. Missing
// holds the absent required fields in canonical order; Cause is set
// instead when a present field is malformed (a non-numeric user_id).
type InvalidRecordError struct {
	Missing []string
	Cause   error
}

// Error implements the error interface.
func (e *InvalidRecordError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("invalid user record: missing fields: %s", strings.Join(e.Missing, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid user record: %v", e.Cause)
	}
	return "invalid user record"
}

// Is matches the ErrInvalidRecord sentinel.
func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Unwrap returns the underlying cause, if any.
func (e *InvalidRecordError) Unwrap() error {
	return e.Cause
}
