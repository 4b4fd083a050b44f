package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/reports"
	"github.com/gorilla/mux"
)

// listAppliances returns all monitored appliances
func (r *Router) listAppliances(w http.ResponseWriter, req *http.Request) {
	var appliances []models.Appliance
	if err := r.db.Order("name").Find(&appliances).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, appliances)
}

// getAppliance returns a single appliance
func (r *Router) getAppliance(w http.ResponseWriter, req *http.Request) {
	var appliance models.Appliance
	if err := r.db.First(&appliance, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Appliance not found")
		return
	}
	respondJSON(w, http.StatusOK, appliance)
}

// createAppliance creates a new appliance
func (r *Router) createAppliance(w http.ResponseWriter, req *http.Request) {
	var appliance models.Appliance
	if err := json.NewDecoder(req.Body).Decode(&appliance); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if appliance.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	appliance.ID = ""

	if err := r.db.Create(&appliance).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, appliance)
}

// updateAppliance replaces an appliance's fields. Changing the range here
// does not retroactively re-flag old readings; compliance is evaluated at
// log-write time.
func (r *Router) updateAppliance(w http.ResponseWriter, req *http.Request) {
	var appliance models.Appliance
	if err := r.db.First(&appliance, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Appliance not found")
		return
	}

	var body models.Appliance
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if body.MinTemp != nil && body.MaxTemp != nil && *body.MinTemp > *body.MaxTemp {
		respondError(w, http.StatusBadRequest, "minTemp must not exceed maxTemp")
		return
	}

	appliance.Name = body.Name
	appliance.Location = body.Location
	appliance.Type = body.Type
	appliance.MinTemp = body.MinTemp
	appliance.MaxTemp = body.MaxTemp

	if err := r.db.Save(&appliance).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, appliance)
}

// deleteAppliance removes an appliance
func (r *Router) deleteAppliance(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.Appliance{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Appliance not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// applianceQR serves the scan-to-log QR code for one appliance as PNG
func (r *Router) applianceQR(w http.ResponseWriter, req *http.Request) {
	var appliance models.Appliance
	if err := r.db.First(&appliance, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Appliance not found")
		return
	}

	png, err := reports.ApplianceQR(appliance)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate QR")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// applianceLabels builds a printable QR label sheet. An empty id list means
// every appliance.
func (r *Router) applianceLabels(w http.ResponseWriter, req *http.Request) {
	var body struct {
		IDs    []string            `json:"ids"`
		Layout reports.LabelConfig `json:"layout"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	query := r.db.Order("name")
	if len(body.IDs) > 0 {
		query = query.Where("id IN ?", body.IDs)
	}

	var appliances []models.Appliance
	if err := query.Find(&appliances).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(appliances) == 0 {
		respondError(w, http.StatusNotFound, "No appliances to print")
		return
	}

	pdf, err := reports.BuildApplianceLabels(appliances, body.Layout)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate labels")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="appliance-labels.pdf"`)
	w.Write(pdf)
}
