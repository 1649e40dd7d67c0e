// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/persona/internal/config"
	"github.com/tomtom215/persona/internal/engine"
)

const sampleCSV = `user_id,age,gender,last_active,interactions,purchases
1,25,M,2025-08-10,15,2
2,31,F,2025-07-22,4,0
3,19,F,2025-08-01,52,7
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}
	return path
}

func TestNewLoadsCSV(t *testing.T) {
	t.Parallel()

	store, err := New(&config.DatasetConfig{Path: writeCSV(t, sampleCSV)}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if store.Len() != 3 {
		t.Errorf("Len() = %d, want 3", store.Len())
	}
	if got := store.IDs(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("IDs() = %v, want [1 2 3]", got)
	}

	rec, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	want := engine.Record{
		engine.FieldUserID:       "1",
		engine.FieldAge:          "25",
		engine.FieldGender:       "M",
		engine.FieldLastActive:   "2025-08-10",
		engine.FieldInteractions: "15",
		engine.FieldPurchases:    "2",
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Get(1) = %v, want %v", rec, want)
	}
}

func TestGetUnknownUser(t *testing.T) {
	t.Parallel()

	store, err := New(&config.DatasetConfig{Path: writeCSV(t, sampleCSV)}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := store.Get(99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Get(99) error = %v, want ErrUserNotFound", err)
	}
}

func TestEmptyCellsLoadAsAbsentFields(t *testing.T) {
	t.Parallel()

	csvData := "user_id,age,gender,last_active,interactions,purchases\n" +
		"1,25,M,2025-08-10,15,\n"
	store, err := New(&config.DatasetConfig{Path: writeCSV(t, csvData)}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	rec, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if _, ok := rec[engine.FieldPurchases]; ok {
		t.Error("Expected empty purchases cell to load as absent field")
	}
	if engine.ValidateRecord(rec) {
		t.Error("Expected incomplete record to fail validation")
	}
}

func TestRaggedRowsTolerated(t *testing.T) {
	t.Parallel()

	csvData := "user_id,age,gender,last_active,interactions,purchases\n" +
		"1,25,M\n"
	store, err := New(&config.DatasetConfig{Path: writeCSV(t, csvData)}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	rec, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if engine.ValidateRecord(rec) {
		t.Error("Expected short row to produce an invalid record")
	}
}

func TestRowsWithoutUserIDSkipped(t *testing.T) {
	t.Parallel()

	csvData := "user_id,age,gender,last_active,interactions,purchases\n" +
		"1,25,M,2025-08-10,15,2\n" +
		",30,F,2025-08-09,3,1\n" +
		"abc,30,F,2025-08-09,3,1\n"
	store, err := New(&config.DatasetConfig{Path: writeCSV(t, csvData)}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (unusable rows skipped)", store.Len())
	}
}

func TestHeaderWithoutUserIDRejected(t *testing.T) {
	t.Parallel()

	csvData := "id,age\n1,25\n"
	_, err := New(&config.DatasetConfig{Path: writeCSV(t, csvData)}, zerolog.Nop())
	if err == nil || !strings.Contains(err.Error(), "user_id") {
		t.Fatalf("Expected header error mentioning user_id, got %v", err)
	}
}

func TestMissingFileWithoutSeedingFails(t *testing.T) {
	t.Parallel()

	_, err := New(&config.DatasetConfig{Path: filepath.Join(t.TempDir(), "absent.csv")}, zerolog.Nop())
	if err == nil {
		t.Fatal("Expected error for missing dataset file")
	}
}

func TestMockSeeding(t *testing.T) {
	t.Parallel()

	cfg := &config.DatasetConfig{
		Path:      filepath.Join(t.TempDir(), "absent.csv"),
		SeedMock:  true,
		SeedUsers: 25,
	}
	store, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if store.Len() != 25 {
		t.Errorf("Len() = %d, want 25", store.Len())
	}
	if store.Source() != "mock" {
		t.Errorf("Source() = %q, want mock", store.Source())
	}

	// Every seeded record is decision-eligible.
	for _, id := range store.IDs() {
		rec, err := store.Get(id)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", id, err)
		}
		if !engine.ValidateRecord(rec) {
			t.Errorf("Seeded record %d failed validation: %v", id, rec)
		}
	}
}

func TestMockSeedingDeterministic(t *testing.T) {
	t.Parallel()

	a := seedMockUsers(10)
	b := seedMockUsers(10)
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical mock datasets across runs")
	}
}
