package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// ReportData holds the already-filtered log collections for one report. The
// handler queries the store by date range; this package only renders.
type ReportData struct {
	From           time.Time
	To             time.Time
	Temperatures   []models.TemperatureLog
	Deliveries     []models.DeliveryLog
	Production     []models.ProductionLog
	Cleaning       []models.CleaningChecklistItem
	ApplianceNames map[string]string
	SupplierNames  map[string]string
}

const dateFormat = "02 Jan 2006"
const timeFormat = "02 Jan 15:04"

func lookup(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Unknown"
}

func complianceCell(ok bool) string {
	if ok {
		return "Pass"
	}
	return "FAIL"
}

// BuildComplianceReport renders the HACCP evidence PDF for a date range:
// one table per log kind, non-compliant rows highlighted.
func BuildComplianceReport(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "ChefCheck HACCP Compliance Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	period := fmt.Sprintf("%s - %s", data.From.Format(dateFormat), data.To.Format(dateFormat))
	pdf.CellFormat(0, 6, period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeTemperatureSection(pdf, data)
	writeDeliverySection(pdf, data)
	writeProductionSection(pdf, data)
	writeCleaningSection(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 7, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, compliant bool) {
	if compliant {
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.SetTextColor(200, 0, 0)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func emptyNote(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "No entries in this period.", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
}

func writeTemperatureSection(pdf *gofpdf.Fpdf, data ReportData) {
	sectionHeader(pdf, "Temperature Logs")
	if len(data.Temperatures) == 0 {
		emptyNote(pdf)
		pdf.Ln(4)
		return
	}

	widths := []float64{32, 55, 22, 18, 63}
	tableHeader(pdf, widths, []string{"Time", "Appliance", "Temp (C)", "Result", "Corrective Action"})
	for _, l := range data.Temperatures {
		tableRow(pdf, widths, []string{
			l.LogTime.Format(timeFormat),
			lookup(data.ApplianceNames, l.ApplianceID),
			fmt.Sprintf("%.1f", l.Temperature),
			complianceCell(l.IsCompliant),
			l.CorrectiveAction,
		}, l.IsCompliant)
	}
	pdf.Ln(4)
}

func writeDeliverySection(pdf *gofpdf.Fpdf, data ReportData) {
	sectionHeader(pdf, "Deliveries")
	if len(data.Deliveries) == 0 {
		emptyNote(pdf)
		pdf.Ln(4)
		return
	}

	widths := []float64{32, 55, 18, 18, 67}
	tableHeader(pdf, widths, []string{"Time", "Supplier", "Items", "Result", "Received By"})
	for _, l := range data.Deliveries {
		tableRow(pdf, widths, []string{
			l.DeliveryTime.Format(timeFormat),
			lookup(data.SupplierNames, l.SupplierID),
			fmt.Sprintf("%d", len(l.Items)),
			complianceCell(l.IsCompliant),
			l.ReceivedBy,
		}, l.IsCompliant)
	}
	pdf.Ln(4)
}

func writeProductionSection(pdf *gofpdf.Fpdf, data ReportData) {
	sectionHeader(pdf, "Production Batches")
	if len(data.Production) == 0 {
		emptyNote(pdf)
		pdf.Ln(4)
		return
	}

	widths := []float64{32, 55, 28, 18, 57}
	tableHeader(pdf, widths, []string{"Time", "Product", "Batch", "Result", "Verified By"})
	for _, l := range data.Production {
		tableRow(pdf, widths, []string{
			l.LogTime.Format(timeFormat),
			l.ProductName,
			l.BatchCode,
			complianceCell(l.IsCompliant),
			l.VerifiedBy,
		}, l.IsCompliant)
	}
	pdf.Ln(4)
}

func writeCleaningSection(pdf *gofpdf.Fpdf, data ReportData) {
	sectionHeader(pdf, "Cleaning Completions")
	if len(data.Cleaning) == 0 {
		emptyNote(pdf)
		pdf.Ln(4)
		return
	}

	widths := []float64{32, 60, 40, 58}
	tableHeader(pdf, widths, []string{"Completed", "Task", "Area", "By"})
	for _, item := range data.Cleaning {
		completed := ""
		if item.CompletedAt != nil {
			completed = item.CompletedAt.Format(timeFormat)
		}
		tableRow(pdf, widths, []string{
			completed,
			item.Name,
			item.Area,
			item.CompletedBy,
		}, true)
	}
	pdf.Ln(4)
}

// QRContent encodes an appliance for scan-to-log shortcuts.
// Protocol: CHEF$1$COMPACTUUID (uppercase, dashes stripped, so the QR stays
// in the efficient alphanumeric mode).
func QRContent(a models.Appliance) string {
	compact := strings.ToUpper(strings.ReplaceAll(a.ID, "-", ""))
	return "CHEF$1$" + compact
}

// ApplianceQR renders the scan-to-log QR code for one appliance as PNG
func ApplianceQR(a models.Appliance) ([]byte, error) {
	return qrcode.Encode(QRContent(a), qrcode.Low, 256)
}

// LabelConfig holds the grid layout for a label sheet
type LabelConfig struct {
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"marginTop"`
	MarginLeft float64 `json:"marginLeft"`
	GapX       float64 `json:"gapX"`
	GapY       float64 `json:"gapY"`
}

// DefaultLabelConfig fits standard 3x8 adhesive label sheets
func DefaultLabelConfig() LabelConfig {
	return LabelConfig{Cols: 3, Rows: 8, MarginTop: 10, MarginLeft: 7, GapX: 2, GapY: 0}
}

// BuildApplianceLabels creates a printable A4 sheet of QR labels, one per
// appliance, for sticking on the equipment itself.
func BuildApplianceLabels(appliances []models.Appliance, cfg LabelConfig) ([]byte, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		cfg = DefaultLabelConfig()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	// A4 dimensions
	pageWidth, pageHeight := 210.0, 297.0

	totalGapX := float64(cfg.Cols-1) * cfg.GapX
	totalGapY := float64(cfg.Rows-1) * cfg.GapY

	availW := pageWidth - (cfg.MarginLeft * 2)
	availH := pageHeight - (cfg.MarginTop * 2)

	labelW := (availW - totalGapX) / float64(cfg.Cols)
	labelH := (availH - totalGapY) / float64(cfg.Rows)

	labelsPerPage := cfg.Cols * cfg.Rows

	for i, appliance := range appliances {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		indexOnPage := i % labelsPerPage
		col := indexOnPage % cfg.Cols
		row := indexOnPage / cfg.Cols

		x := cfg.MarginLeft + float64(col)*(labelW+cfg.GapX)
		y := cfg.MarginTop + float64(row)*(labelH+cfg.GapY)

		qrPng, err := qrcode.Encode(QRContent(appliance), qrcode.Low, 256)
		if err != nil {
			return nil, err
		}

		imgName := fmt.Sprintf("qr_%d", i)
		imgOptions := gofpdf.ImageOptions{
			ImageType: "PNG",
			ReadDpi:   true,
		}

		reader := bytes.NewReader(qrPng)
		_ = pdf.RegisterImageOptionsReader(imgName, imgOptions, reader)

		// QR centered in label, taking up 70% height
		qrSize := labelH * 0.7
		if qrSize > labelW {
			qrSize = labelW * 0.9
		}

		qrX := x + (labelW-qrSize)/2
		qrY := y + (labelH-qrSize)/2 - 2

		pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, imgOptions, 0, "")

		// Appliance name below the QR
		pdf.SetXY(x, y+labelH-6)
		pdf.SetFontSize(8)
		pdf.CellFormat(labelW, 5, appliance.Name, "", 0, "C", false, 0, "")

		// Location top right
		pdf.SetXY(x, y+1)
		pdf.SetFontSize(6)
		pdf.CellFormat(labelW, 3, appliance.Location, "", 0, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
