package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestParseProductCode tests product code parsing
func TestParseProductCode(t *testing.T) {
	if _, err := ParseProductCode(""); err == nil {
		t.Error("Expected error for empty product code")
	}
	if _, err := ParseProductCode("   "); err == nil {
		t.Error("Expected error for blank product code")
	}

	code, err := ParseProductCode("SKU-42")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if code.String() != "SKU-42" {
		t.Errorf("Expected 'SKU-42', got '%s'", code)
	}
}

// TestSeriesFingerprint tests fingerprint stability and sensitivity
func TestSeriesFingerprint(t *testing.T) {
	t1 := Now()

	a := ComputeSeriesFingerprint("SKU-1", "L1", "W1", 10, t1, t1)
	b := ComputeSeriesFingerprint("SKU-1", "L1", "W1", 10, t1, t1)
	if a != b {
		t.Error("Same inputs must produce the same fingerprint")
	}

	c := ComputeSeriesFingerprint("SKU-1", "L1", "W1", 11, t1, t1)
	if a == c {
		t.Error("Different series length must change the fingerprint")
	}

	d := ComputeSeriesFingerprint("SKU-2", "L1", "W1", 10, t1, t1)
	if a == d {
		t.Error("Different product must change the fingerprint")
	}
}
