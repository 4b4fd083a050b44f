package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chefcheck/chefcheck/internal/activity"
	"github.com/chefcheck/chefcheck/internal/compliance"
	"github.com/chefcheck/chefcheck/internal/middleware"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/gorilla/mux"
)

// TemperatureLogRequest is the write payload for temperature logs. There is
// deliberately no isCompliant field: the flag is always derived server-side
// from the appliance's effective range.
type TemperatureLogRequest struct {
	ApplianceID      string     `json:"applianceId"`
	Temperature      *float64   `json:"temperature"`
	LogTime          *time.Time `json:"logTime"`
	CorrectiveAction string     `json:"correctiveAction"`
	LoggedBy         string     `json:"loggedBy"`
}

// listTemperatureLogs returns all temperature logs, newest first
func (r *Router) listTemperatureLogs(w http.ResponseWriter, req *http.Request) {
	var logs []models.TemperatureLog
	if err := r.db.Order("log_time DESC").Find(&logs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// getTemperatureLog returns a single temperature log
func (r *Router) getTemperatureLog(w http.ResponseWriter, req *http.Request) {
	var logEntry models.TemperatureLog
	if err := r.db.First(&logEntry, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Temperature log not found")
		return
	}
	respondJSON(w, http.StatusOK, logEntry)
}

// createTemperatureLog records a reading and derives its compliance flag
func (r *Router) createTemperatureLog(w http.ResponseWriter, req *http.Request) {
	var body TemperatureLogRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.ApplianceID == "" || body.Temperature == nil {
		respondError(w, http.StatusBadRequest, "applianceId and temperature are required")
		return
	}

	var appliance models.Appliance
	if err := r.db.First(&appliance, "id = ?", body.ApplianceID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Unknown appliance")
		return
	}

	logTime := time.Now()
	if body.LogTime != nil {
		logTime = *body.LogTime
	}
	loggedBy := body.LoggedBy
	if loggedBy == "" {
		loggedBy = middleware.UserNameFrom(req.Context())
	}

	logEntry := models.TemperatureLog{
		ApplianceID:      appliance.ID,
		Temperature:      *body.Temperature,
		LogTime:          logTime,
		IsCompliant:      compliance.Evaluate(*body.Temperature, appliance.MinTemp, appliance.MaxTemp, appliance.Type, r.complianceDefaults()),
		CorrectiveAction: body.CorrectiveAction,
		LoggedBy:         loggedBy,
	}

	if err := r.db.Create(&logEntry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	r.hub.Broadcast(map[string]interface{}{
		"type":  "activity",
		"entry": activity.FromTemperature(logEntry, activity.Lookups{ApplianceNames: map[string]string{appliance.ID: appliance.Name}}),
	})

	respondJSON(w, http.StatusCreated, logEntry)
}

// updateTemperatureLog corrects a reading. The compliance flag is recomputed
// against the current effective range, never taken from the request.
func (r *Router) updateTemperatureLog(w http.ResponseWriter, req *http.Request) {
	var logEntry models.TemperatureLog
	if err := r.db.First(&logEntry, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Temperature log not found")
		return
	}

	var body TemperatureLogRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.ApplianceID == "" || body.Temperature == nil {
		respondError(w, http.StatusBadRequest, "applianceId and temperature are required")
		return
	}

	var appliance models.Appliance
	if err := r.db.First(&appliance, "id = ?", body.ApplianceID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Unknown appliance")
		return
	}

	logEntry.ApplianceID = appliance.ID
	logEntry.Temperature = *body.Temperature
	if body.LogTime != nil {
		logEntry.LogTime = *body.LogTime
	}
	logEntry.CorrectiveAction = body.CorrectiveAction
	if body.LoggedBy != "" {
		logEntry.LoggedBy = body.LoggedBy
	}
	logEntry.IsCompliant = compliance.Evaluate(logEntry.Temperature, appliance.MinTemp, appliance.MaxTemp, appliance.Type, r.complianceDefaults())

	if err := r.db.Save(&logEntry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logEntry)
}

// deleteTemperatureLog removes a reading
func (r *Router) deleteTemperatureLog(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.TemperatureLog{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Temperature log not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
