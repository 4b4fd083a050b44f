package models

import (
	"encoding/json"
	"testing"

	"github.com/chefcheck/chefcheck/internal/compliance"
)

func TestComplianceDefaults_RoundTrip(t *testing.T) {
	want := compliance.Defaults{
		Fridge:  compliance.Range{Min: 1, Max: 4},
		Freezer: compliance.Range{Min: -22, Max: -16},
		HotHold: compliance.Range{Min: 65, Max: 95},
	}
	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}

	params := SystemParameters{ID: SystemParametersID, TemperatureRanges: raw}
	got, err := params.ComplianceDefaults()
	if err != nil {
		t.Fatalf("Failed to decode ranges: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestComplianceDefaults_EmptyFallsBack(t *testing.T) {
	params := SystemParameters{ID: SystemParametersID}

	got, err := params.ComplianceDefaults()
	if err != nil {
		t.Fatalf("Empty ranges should fall back, not error: %v", err)
	}
	if got != DefaultRanges() {
		t.Errorf("expected standard defaults, got %+v", got)
	}
}

func TestDefaultParameters(t *testing.T) {
	params := DefaultParameters()

	if params.ID != SystemParametersID {
		t.Errorf("singleton row must use the fixed id, got %q", params.ID)
	}

	d, err := params.ComplianceDefaults()
	if err != nil {
		t.Fatalf("Default row should decode: %v", err)
	}
	if d.Fridge.Max != 5 || d.Freezer.Min != -25 || d.HotHold.Min != 63 {
		t.Errorf("unexpected default ranges: %+v", d)
	}
}
