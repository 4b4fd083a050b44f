package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chefcheck/chefcheck/internal/activity"
	"github.com/chefcheck/chefcheck/internal/middleware"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// DeliveryLogRequest is the write payload for a goods-in check. The overall
// and per-item compliance flags are the receiver's judgment and are stored
// as supplied.
type DeliveryLogRequest struct {
	SupplierID       string                `json:"supplierId"`
	DeliveryTime     *time.Time            `json:"deliveryTime"`
	VehicleReg       string                `json:"vehicleReg"`
	DriverName       string                `json:"driverName"`
	OverallCondition string                `json:"overallCondition"`
	IsCompliant      bool                  `json:"isCompliant"`
	CorrectiveAction string                `json:"correctiveAction"`
	ReceivedBy       string                `json:"receivedBy"`
	Items            []models.DeliveryItem `json:"items"`
}

// listDeliveryLogs returns all delivery logs with their items, newest first
func (r *Router) listDeliveryLogs(w http.ResponseWriter, req *http.Request) {
	var logs []models.DeliveryLog
	if err := r.db.Preload("Items").Order("delivery_time DESC").Find(&logs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// getDeliveryLog returns a single delivery log with its items
func (r *Router) getDeliveryLog(w http.ResponseWriter, req *http.Request) {
	var logEntry models.DeliveryLog
	if err := r.db.Preload("Items").First(&logEntry, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Delivery log not found")
		return
	}
	respondJSON(w, http.StatusOK, logEntry)
}

// createDeliveryLog records a delivery and its line items in one transaction,
// so a failed item insert can never leave an orphaned parent row
func (r *Router) createDeliveryLog(w http.ResponseWriter, req *http.Request) {
	var body DeliveryLogRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.SupplierID == "" {
		respondError(w, http.StatusBadRequest, "supplierId is required")
		return
	}

	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", body.SupplierID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Unknown supplier")
		return
	}

	deliveryTime := time.Now()
	if body.DeliveryTime != nil {
		deliveryTime = *body.DeliveryTime
	}
	receivedBy := body.ReceivedBy
	if receivedBy == "" {
		receivedBy = middleware.UserNameFrom(req.Context())
	}

	for i := range body.Items {
		if body.Items[i].Name == "" {
			respondError(w, http.StatusBadRequest, "every delivery item needs a name")
			return
		}
		body.Items[i].ID = ""
		body.Items[i].DeliveryLogID = ""
	}

	logEntry := models.DeliveryLog{
		SupplierID:       supplier.ID,
		DeliveryTime:     deliveryTime,
		VehicleReg:       body.VehicleReg,
		DriverName:       body.DriverName,
		OverallCondition: body.OverallCondition,
		IsCompliant:      body.IsCompliant,
		CorrectiveAction: body.CorrectiveAction,
		ReceivedBy:       receivedBy,
		Items:            body.Items,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	r.hub.Broadcast(map[string]interface{}{
		"type":  "activity",
		"entry": activity.FromDelivery(logEntry, activity.Lookups{SupplierNames: map[string]string{supplier.ID: supplier.Name}}),
	})

	respondJSON(w, http.StatusCreated, logEntry)
}

// updateDeliveryLog replaces a delivery log and its items (full-document
// update: the stored item set becomes exactly the submitted one)
func (r *Router) updateDeliveryLog(w http.ResponseWriter, req *http.Request) {
	var logEntry models.DeliveryLog
	if err := r.db.First(&logEntry, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Delivery log not found")
		return
	}

	var body DeliveryLogRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.SupplierID == "" {
		respondError(w, http.StatusBadRequest, "supplierId is required")
		return
	}

	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", body.SupplierID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Unknown supplier")
		return
	}

	logEntry.SupplierID = supplier.ID
	if body.DeliveryTime != nil {
		logEntry.DeliveryTime = *body.DeliveryTime
	}
	logEntry.VehicleReg = body.VehicleReg
	logEntry.DriverName = body.DriverName
	logEntry.OverallCondition = body.OverallCondition
	logEntry.IsCompliant = body.IsCompliant
	logEntry.CorrectiveAction = body.CorrectiveAction
	if body.ReceivedBy != "" {
		logEntry.ReceivedBy = body.ReceivedBy
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("delivery_log_id = ?", logEntry.ID).Delete(&models.DeliveryItem{}).Error; err != nil {
			return err
		}
		for i := range body.Items {
			body.Items[i].ID = ""
			body.Items[i].DeliveryLogID = logEntry.ID
		}
		if len(body.Items) > 0 {
			if err := tx.Create(&body.Items).Error; err != nil {
				return err
			}
		}
		logEntry.Items = body.Items
		return tx.Omit("Items").Save(&logEntry).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logEntry)
}

// deleteDeliveryLog removes a delivery log and its items together. Items go
// first inside the transaction; the store guarantees no cascade.
func (r *Router) deleteDeliveryLog(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	var logEntry models.DeliveryLog
	if err := r.db.First(&logEntry, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Delivery log not found")
		return
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("delivery_log_id = ?", id).Delete(&models.DeliveryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.DeliveryLog{}, "id = ?", id).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
