package compliance

import "strings"

// Range is an inclusive temperature range in degrees Celsius.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Defaults holds the category fallback ranges configured in system parameters.
// They apply when an appliance has no explicit min/max of its own.
type Defaults struct {
	Fridge  Range `json:"fridge"`
	Freezer Range `json:"freezer"`
	HotHold Range `json:"hotHold"`
}

// Contains reports whether t falls inside the range. Boundary values count.
func (r Range) Contains(t float64) bool {
	return t >= r.Min && t <= r.Max
}

// normalizeType lowercases an appliance type and strips all whitespace, so
// "Walk-in Freezer", "walk in freezer" and "WALKINFREEZER" all match the same
// keyword.
func normalizeType(applianceType string) string {
	return strings.ToLower(strings.Join(strings.Fields(applianceType), ""))
}

// EffectiveRange resolves the range a reading must satisfy. An appliance with
// both min and max set uses those. Otherwise the type is matched against
// category keywords in priority order. No match means no range: the appliance
// is not temperature-controlled and every reading passes.
func EffectiveRange(minTemp, maxTemp *float64, applianceType string, defaults Defaults) *Range {
	if minTemp != nil && maxTemp != nil {
		return &Range{Min: *minTemp, Max: *maxTemp}
	}

	t := normalizeType(applianceType)
	switch {
	case strings.Contains(t, "fridge"):
		r := defaults.Fridge
		return &r
	case strings.Contains(t, "freezer"):
		r := defaults.Freezer
		return &r
	case strings.Contains(t, "hothold"), strings.Contains(t, "bainmarie"), strings.Contains(t, "oven"):
		r := defaults.HotHold
		return &r
	}
	return nil
}

// Evaluate decides whether a logged temperature is compliant for the given
// appliance. This is the single source of truth for the flag stored on a
// temperature log: every create and update path must call it rather than
// trusting a client-sent value.
func Evaluate(temperature float64, minTemp, maxTemp *float64, applianceType string, defaults Defaults) bool {
	r := EffectiveRange(minTemp, maxTemp, applianceType, defaults)
	if r == nil {
		return true
	}
	return r.Contains(temperature)
}
