package compliance

import "testing"

func fp(v float64) *float64 { return &v }

var testDefaults = Defaults{
	Fridge:  Range{Min: 0, Max: 5},
	Freezer: Range{Min: -25, Max: -18},
	HotHold: Range{Min: 63, Max: 100},
}

func TestEvaluate_ExplicitRange(t *testing.T) {
	cases := []struct {
		name string
		temp float64
		want bool
	}{
		{"inside range", 3.2, true},
		{"exactly max", 5, true},
		{"exactly min", 0, true},
		{"just above max", 5.1, false},
		{"just below min", -0.1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.temp, fp(0), fp(5), "Display Fridge", testDefaults)
			if got != tc.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tc.temp, got, tc.want)
			}
		})
	}
}

func TestEvaluate_ExplicitRangeBeatsCategoryDefault(t *testing.T) {
	// Appliance range is wider than the freezer default; readings outside the
	// default but inside the explicit range must pass.
	if !Evaluate(-10, fp(-30), fp(-5), "Walk-in Freezer", testDefaults) {
		t.Error("explicit range should take priority over category default")
	}
}

func TestEvaluate_CategoryDefaults(t *testing.T) {
	cases := []struct {
		name          string
		applianceType string
		temp          float64
		want          bool
	}{
		{"freezer in range", "Walk-in Freezer", -20, true},
		{"freezer out of range", "Walk-in Freezer", -10, false},
		{"freezer at boundary", "Chest Freezer", -18, true},
		{"fridge in range", "Under-counter Fridge", 4, true},
		{"fridge out of range", "Under-counter Fridge", 8, false},
		{"hot hold in range", "Bain Marie", 75, true},
		{"hot hold too cold", "Bain Marie", 55, false},
		{"oven maps to hot hold", "Combi Oven", 63, true},
		{"hot hold spelled with spaces", "Hot Hold Cabinet", 70, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.temp, nil, nil, tc.applianceType, testDefaults)
			if got != tc.want {
				t.Errorf("Evaluate(%v, type=%q) = %v, want %v", tc.temp, tc.applianceType, got, tc.want)
			}
		})
	}
}

func TestEvaluate_NoMatchingCategory(t *testing.T) {
	// A mixer has no temperature requirement; any reading is compliant.
	for _, temp := range []float64{-40, 0, 22.5, 250} {
		if !Evaluate(temp, nil, nil, "Mixer", testDefaults) {
			t.Errorf("Evaluate(%v) for unranged appliance should be true", temp)
		}
	}
}

func TestEvaluate_PartialExplicitRangeFallsBack(t *testing.T) {
	// Only one bound set: treat as unconfigured and use the category default.
	if Evaluate(-10, fp(-30), nil, "Walk-in Freezer", testDefaults) {
		t.Error("min-only appliance should fall back to freezer default")
	}
	if !Evaluate(-20, fp(-30), nil, "Walk-in Freezer", testDefaults) {
		t.Error("freezer default should accept -20")
	}
}

func TestEffectiveRange(t *testing.T) {
	r := EffectiveRange(fp(1), fp(4), "anything", testDefaults)
	if r == nil || r.Min != 1 || r.Max != 4 {
		t.Errorf("expected explicit range {1 4}, got %+v", r)
	}

	r = EffectiveRange(nil, nil, "FRIDGE", testDefaults)
	if r == nil || *r != testDefaults.Fridge {
		t.Errorf("expected fridge default, got %+v", r)
	}

	if r := EffectiveRange(nil, nil, "Mixer", testDefaults); r != nil {
		t.Errorf("expected no range for unmatched type, got %+v", r)
	}
}
