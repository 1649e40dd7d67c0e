// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package engine

// Record field names. The six fields below are required for a record to
// be decision-eligible.
const (
	FieldUserID       = "user_id"
	FieldAge          = "age"
	FieldGender       = "gender"
	FieldLastActive   = "last_active"
	FieldInteractions = "interactions"
	FieldPurchases    = "purchases"
)

// RequiredFields lists the fields a record must carry to be
// decision-eligible, in canonical column order.
var RequiredFields = []string{
	FieldUserID,
	FieldAge,
	FieldGender,
	FieldLastActive,
	FieldInteractions,
	FieldPurchases,
}

// ValidateRecord reports whether the record carries all required fields.
// Absence, not malformedness, is the only defect detected here: values
// are not type- or range-checked. Pure predicate, no side effects.
func ValidateRecord(r Record) bool {
	return len(missingFields(r)) == 0
}

// missingFields returns the required fields absent from the record, in
// canonical order. Used to populate InvalidRecordError detail.
func missingFields(r Record) []string {
	var missing []string
	for _, f := range RequiredFields {
		if _, ok := r[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
