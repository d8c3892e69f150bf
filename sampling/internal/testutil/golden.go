// Package testutil provides shared test infrastructure for the sampling
// pipeline: golden fixture loading and tolerance helpers used across the
// package test suites.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// LoadGolden decodes a JSON fixture from the package's testdata directory
// into dst, failing the test on any error.
func LoadGolden(t *testing.T, name string, dst any) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read golden fixture %s: %v", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("decode golden fixture %s: %v", name, err)
	}
}

// AssertScoreInUnitRange fails the test when a score leaves [0, 1].
func AssertScoreInUnitRange(t *testing.T, name string, score float64) {
	t.Helper()
	if score < 0 || score > 1 || math.IsNaN(score) {
		t.Errorf("%s = %v, want within [0, 1]", name, score)
	}
}
