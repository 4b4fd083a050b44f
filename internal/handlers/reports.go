package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chefcheck/chefcheck/internal/activity"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/reports"
)

// parseReportDate accepts either a date or a full RFC3339 timestamp
func parseReportDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// complianceReport renders the HACCP evidence PDF for a date range.
// Defaults to the last 7 days when no range is given.
func (r *Router) complianceReport(w http.ResponseWriter, req *http.Request) {
	to := time.Now()
	from := to.AddDate(0, 0, -7)

	if raw := req.URL.Query().Get("from"); raw != "" {
		parsed, err := parseReportDate(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "from must be YYYY-MM-DD or RFC3339")
			return
		}
		from = parsed
	}
	if raw := req.URL.Query().Get("to"); raw != "" {
		parsed, err := parseReportDate(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "to must be YYYY-MM-DD or RFC3339")
			return
		}
		// A bare date means "that whole day"
		if len(raw) == len("2006-01-02") {
			parsed = parsed.AddDate(0, 0, 1).Add(-time.Second)
		}
		to = parsed
	}
	if to.Before(from) {
		respondError(w, http.StatusBadRequest, "to must not precede from")
		return
	}

	data := reports.ReportData{From: from, To: to}

	if err := r.db.Where("log_time BETWEEN ? AND ?", from, to).Order("log_time").Find(&data.Temperatures).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Preload("Items").Where("delivery_time BETWEEN ? AND ?", from, to).Order("delivery_time").Find(&data.Deliveries).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Where("log_time BETWEEN ? AND ?", from, to).Order("log_time").Find(&data.Production).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Where("completed = ? AND completed_at BETWEEN ? AND ?", true, from, to).Order("completed_at").Find(&data.Cleaning).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var appliances []models.Appliance
	if err := r.db.Find(&appliances).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var suppliers []models.Supplier
	if err := r.db.Find(&suppliers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	data.ApplianceNames = activity.ApplianceLookup(appliances)
	data.SupplierNames = activity.SupplierLookup(suppliers)

	pdf, err := reports.BuildComplianceReport(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	filename := fmt.Sprintf("compliance-%s-%s.pdf", from.Format("20060102"), to.Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdf)
}
