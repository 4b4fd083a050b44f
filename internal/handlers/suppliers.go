package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/gorilla/mux"
)

// listSuppliers returns all suppliers
func (r *Router) listSuppliers(w http.ResponseWriter, req *http.Request) {
	var suppliers []models.Supplier
	if err := r.db.Order("name").Find(&suppliers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}

// getSupplier returns a single supplier
func (r *Router) getSupplier(w http.ResponseWriter, req *http.Request) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Supplier not found")
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

// createSupplier creates a new supplier
func (r *Router) createSupplier(w http.ResponseWriter, req *http.Request) {
	var supplier models.Supplier
	if err := json.NewDecoder(req.Body).Decode(&supplier); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if supplier.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	supplier.ID = ""

	if err := r.db.Create(&supplier).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, supplier)
}

// updateSupplier replaces a supplier's fields (full-document update)
func (r *Router) updateSupplier(w http.ResponseWriter, req *http.Request) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Supplier not found")
		return
	}

	var body models.Supplier
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	supplier.Name = body.Name
	supplier.ContactPerson = body.ContactPerson
	supplier.Phone = body.Phone
	supplier.Email = body.Email

	if err := r.db.Save(&supplier).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

// deleteSupplier removes a supplier
func (r *Router) deleteSupplier(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.Supplier{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Supplier not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
