package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chefcheck/chefcheck/internal/activity"
	"github.com/chefcheck/chefcheck/internal/middleware"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/gorilla/mux"
)

// ProductionLogRequest is the write payload for production batches. Whether
// the critical limit was met is stated by the verifying member of staff.
type ProductionLogRequest struct {
	ProductName          string     `json:"productName"`
	BatchCode            string     `json:"batchCode"`
	LogTime              *time.Time `json:"logTime"`
	CriticalLimitDetails string     `json:"criticalLimitDetails"`
	IsCompliant          bool       `json:"isCompliant"`
	CorrectiveAction     string     `json:"correctiveAction"`
	VerifiedBy           string     `json:"verifiedBy"`
}

// listProductionLogs returns all production logs, newest first
func (r *Router) listProductionLogs(w http.ResponseWriter, req *http.Request) {
	var logs []models.ProductionLog
	if err := r.db.Order("log_time DESC").Find(&logs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// getProductionLog returns a single production log
func (r *Router) getProductionLog(w http.ResponseWriter, req *http.Request) {
	var logEntry models.ProductionLog
	if err := r.db.First(&logEntry, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Production log not found")
		return
	}
	respondJSON(w, http.StatusOK, logEntry)
}

// createProductionLog records a production batch
func (r *Router) createProductionLog(w http.ResponseWriter, req *http.Request) {
	var body ProductionLogRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.ProductName == "" || body.BatchCode == "" {
		respondError(w, http.StatusBadRequest, "productName and batchCode are required")
		return
	}

	logTime := time.Now()
	if body.LogTime != nil {
		logTime = *body.LogTime
	}
	verifiedBy := body.VerifiedBy
	if verifiedBy == "" {
		verifiedBy = middleware.UserNameFrom(req.Context())
	}

	logEntry := models.ProductionLog{
		ProductName:          body.ProductName,
		BatchCode:            body.BatchCode,
		LogTime:              logTime,
		CriticalLimitDetails: body.CriticalLimitDetails,
		IsCompliant:          body.IsCompliant,
		CorrectiveAction:     body.CorrectiveAction,
		VerifiedBy:           verifiedBy,
	}

	if err := r.db.Create(&logEntry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	r.hub.Broadcast(map[string]interface{}{
		"type":  "activity",
		"entry": activity.FromProduction(logEntry),
	})

	respondJSON(w, http.StatusCreated, logEntry)
}

// updateProductionLog corrects a production log (full-document update)
func (r *Router) updateProductionLog(w http.ResponseWriter, req *http.Request) {
	var logEntry models.ProductionLog
	if err := r.db.First(&logEntry, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Production log not found")
		return
	}

	var body ProductionLogRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.ProductName == "" || body.BatchCode == "" {
		respondError(w, http.StatusBadRequest, "productName and batchCode are required")
		return
	}

	logEntry.ProductName = body.ProductName
	logEntry.BatchCode = body.BatchCode
	if body.LogTime != nil {
		logEntry.LogTime = *body.LogTime
	}
	logEntry.CriticalLimitDetails = body.CriticalLimitDetails
	logEntry.IsCompliant = body.IsCompliant
	logEntry.CorrectiveAction = body.CorrectiveAction
	if body.VerifiedBy != "" {
		logEntry.VerifiedBy = body.VerifiedBy
	}

	if err := r.db.Save(&logEntry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logEntry)
}

// deleteProductionLog removes a production log
func (r *Router) deleteProductionLog(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.ProductionLog{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Production log not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
