package activity

import (
	"strings"
	"testing"
	"time"

	"github.com/chefcheck/chefcheck/internal/models"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func sampleData() ([]models.ProductionLog, []models.TemperatureLog, []models.DeliveryLog, []models.CleaningChecklistItem, Lookups) {
	production := []models.ProductionLog{
		{ID: "p1", ProductName: "Lasagne", BatchCode: "B100", LogTime: at(9), IsCompliant: true},
		{ID: "p2", ProductName: "Soup", BatchCode: "B101", LogTime: at(12), IsCompliant: true},
		{ID: "p3", ProductName: "Stew", BatchCode: "B102", LogTime: at(15), IsCompliant: false},
	}
	temperatures := []models.TemperatureLog{
		{ID: "t1", ApplianceID: "a1", Temperature: 3.5, LogTime: at(8), IsCompliant: true},
		{ID: "t2", ApplianceID: "a1", Temperature: 7.2, LogTime: at(14), IsCompliant: false},
	}
	deliveries := []models.DeliveryLog{
		{ID: "d1", SupplierID: "s1", DeliveryTime: at(10), IsCompliant: true},
	}
	completedAt := at(11)
	cleaning := []models.CleaningChecklistItem{
		{ID: "c1", Name: "Deep clean fryer", Area: "Kitchen", Completed: true, CompletedAt: &completedAt, CompletedBy: "Sam"},
	}
	lk := Lookups{
		ApplianceNames: map[string]string{"a1": "Main Fridge"},
		SupplierNames:  map[string]string{"s1": "Fresh Farms"},
	}
	return production, temperatures, deliveries, cleaning, lk
}

func TestRecent_LimitAndOrder(t *testing.T) {
	production, temperatures, deliveries, cleaning, lk := sampleData()

	got := Recent(production, temperatures, deliveries, cleaning, lk, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	// Most recent first: stew (15:00), temp reading (14:00), soup (12:00)
	wantIDs := []string{"p3", "t2", "p2"}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("entry %d: expected %s, got %s", i, want, got[i].ID)
		}
	}

	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Errorf("feed not in descending order at index %d", i)
		}
	}
}

func TestRecent_LimitLargerThanActivity(t *testing.T) {
	production, temperatures, deliveries, cleaning, lk := sampleData()

	got := Recent(production, temperatures, deliveries, cleaning, lk, 100)
	if len(got) != 7 {
		t.Fatalf("expected all 7 entries, got %d", len(got))
	}
}

func TestRecent_DefaultLimit(t *testing.T) {
	production, temperatures, deliveries, cleaning, lk := sampleData()

	got := Recent(production, temperatures, deliveries, cleaning, lk, 0)
	if len(got) != DefaultLimit {
		t.Fatalf("expected default limit of %d, got %d", DefaultLimit, len(got))
	}
}

func TestRecent_EmptyInput(t *testing.T) {
	got := Recent(nil, nil, nil, nil, Lookups{}, 5)
	if len(got) != 0 {
		t.Fatalf("expected empty feed, got %d entries", len(got))
	}
}

func TestRecent_SkipsIncompleteCleaning(t *testing.T) {
	cleaning := []models.CleaningChecklistItem{
		{ID: "c1", Name: "Mop floor", Completed: false},
		{ID: "c2", Name: "Sanitize prep bench", Completed: true}, // completed but no timestamp
	}

	got := Recent(nil, nil, nil, cleaning, Lookups{}, 10)
	if len(got) != 0 {
		t.Fatalf("incomplete cleaning items should not appear in the feed, got %d entries", len(got))
	}
}

func TestDescriptions(t *testing.T) {
	production, temperatures, deliveries, cleaning, lk := sampleData()

	e := FromProduction(production[0])
	if e.Description != "Production: Lasagne (Batch #B100)" {
		t.Errorf("unexpected production description: %q", e.Description)
	}

	e = FromTemperature(temperatures[0], lk)
	if e.Description != "Temperature: Main Fridge at 3.5°C" {
		t.Errorf("unexpected temperature description: %q", e.Description)
	}

	e = FromDelivery(deliveries[0], lk)
	if e.Description != "Delivery received from Fresh Farms" {
		t.Errorf("unexpected delivery description: %q", e.Description)
	}

	e = FromCleaning(cleaning[0])
	if e.Description != "Cleaning completed: Deep clean fryer (Kitchen)" {
		t.Errorf("unexpected cleaning description: %q", e.Description)
	}
	if e.User != "Sam" {
		t.Errorf("expected cleaning user Sam, got %q", e.User)
	}
}

func TestUnknownLookupFallback(t *testing.T) {
	e := FromTemperature(models.TemperatureLog{ID: "t9", ApplianceID: "missing", Temperature: 2}, Lookups{})
	if !strings.Contains(e.Description, "Unknown") {
		t.Errorf("expected Unknown fallback in description, got %q", e.Description)
	}
}

func TestNonComplianceFlag(t *testing.T) {
	production, temperatures, _, _, lk := sampleData()

	if FromProduction(production[2]).IsNonCompliant != true {
		t.Error("non-compliant production log should be flagged")
	}
	if FromTemperature(temperatures[0], lk).IsNonCompliant {
		t.Error("compliant reading should not be flagged")
	}
}
