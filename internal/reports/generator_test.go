package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/chefcheck/chefcheck/internal/models"
)

func sampleReportData() ReportData {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	completedAt := day.Add(11 * time.Hour)
	return ReportData{
		From: day,
		To:   day.AddDate(0, 0, 7),
		Temperatures: []models.TemperatureLog{
			{ID: "t1", ApplianceID: "a1", Temperature: 3.5, LogTime: day.Add(8 * time.Hour), IsCompliant: true},
			{ID: "t2", ApplianceID: "a1", Temperature: 8.9, LogTime: day.Add(14 * time.Hour), IsCompliant: false, CorrectiveAction: "Moved stock, called engineer"},
		},
		Deliveries: []models.DeliveryLog{
			{ID: "d1", SupplierID: "s1", DeliveryTime: day.Add(10 * time.Hour), IsCompliant: true, ReceivedBy: "Sam",
				Items: []models.DeliveryItem{{Name: "Chicken breast", Quantity: 10, Unit: "kg", IsCompliant: true}}},
		},
		Production: []models.ProductionLog{
			{ID: "p1", ProductName: "Lasagne", BatchCode: "B100", LogTime: day.Add(12 * time.Hour), IsCompliant: true, VerifiedBy: "Alex"},
		},
		Cleaning: []models.CleaningChecklistItem{
			{ID: "c1", Name: "Deep clean fryer", Area: "Kitchen", Completed: true, CompletedAt: &completedAt, CompletedBy: "Sam"},
		},
		ApplianceNames: map[string]string{"a1": "Main Fridge"},
		SupplierNames:  map[string]string{"s1": "Fresh Farms"},
	}
}

func TestBuildComplianceReport(t *testing.T) {
	pdf, err := BuildComplianceReport(sampleReportData())
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("Expected non-empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("Output does not look like a PDF (starts with %q)", pdf[:4])
	}
}

func TestBuildComplianceReport_EmptyPeriod(t *testing.T) {
	data := ReportData{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
	}

	pdf, err := BuildComplianceReport(data)
	if err != nil {
		t.Fatalf("Empty period should still render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Empty report should still be a valid PDF")
	}
}

func TestApplianceQR(t *testing.T) {
	appliance := models.Appliance{ID: "3f2b8c9a-1111-4222-8333-944445555666", Name: "Main Fridge"}

	png, err := ApplianceQR(appliance)
	if err != nil {
		t.Fatalf("Failed to encode QR: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("QR output is not a PNG")
	}
}

func TestQRContent(t *testing.T) {
	appliance := models.Appliance{ID: "3f2b8c9a-1111-4222-8333-944445555666"}

	content := QRContent(appliance)
	want := "CHEF$1$3F2B8C9A111142228333944445555666"
	if content != want {
		t.Errorf("Unexpected QR content: got %q, want %q", content, want)
	}
}

func TestBuildApplianceLabels(t *testing.T) {
	appliances := make([]models.Appliance, 0, 30)
	for i := 0; i < 30; i++ {
		appliances = append(appliances, models.Appliance{
			ID:       "00000000-0000-4000-8000-0000000000" + string(rune('a'+i%26)) + "0",
			Name:     "Fridge",
			Location: "Kitchen",
		})
	}

	// 30 labels at 24 per page forces the second-page path
	pdf, err := BuildApplianceLabels(appliances, DefaultLabelConfig())
	if err != nil {
		t.Fatalf("Failed to build labels: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Label sheet is not a PDF")
	}
}

func TestBuildApplianceLabels_BadConfigFallsBack(t *testing.T) {
	_, err := BuildApplianceLabels([]models.Appliance{{ID: "x", Name: "Oven"}}, LabelConfig{})
	if err != nil {
		t.Fatalf("Zero config should fall back to defaults: %v", err)
	}
}
