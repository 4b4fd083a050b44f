package handlers

import (
	"net/http"
	"strconv"

	"github.com/chefcheck/chefcheck/internal/activity"
	"github.com/chefcheck/chefcheck/internal/models"
)

// recentActivity returns the unified dashboard feed across all four log kinds
func (r *Router) recentActivity(w http.ResponseWriter, req *http.Request) {
	limit := activity.DefaultLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	var (
		production   []models.ProductionLog
		temperatures []models.TemperatureLog
		deliveries   []models.DeliveryLog
		cleaning     []models.CleaningChecklistItem
		appliances   []models.Appliance
		suppliers    []models.Supplier
	)

	// Each kind already sorts newest-first, so fetching `limit` of each is
	// enough to build the merged top `limit`
	if err := r.db.Order("log_time DESC").Limit(limit).Find(&production).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Order("log_time DESC").Limit(limit).Find(&temperatures).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Order("delivery_time DESC").Limit(limit).Find(&deliveries).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Where("completed = ?", true).Order("completed_at DESC").Limit(limit).Find(&cleaning).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Find(&appliances).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := r.db.Find(&suppliers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	feed := activity.Recent(production, temperatures, deliveries, cleaning, activity.Lookups{
		ApplianceNames: activity.ApplianceLookup(appliances),
		SupplierNames:  activity.SupplierLookup(suppliers),
	}, limit)

	respondJSON(w, http.StatusOK, feed)
}
