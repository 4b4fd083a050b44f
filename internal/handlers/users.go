package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
)

// UserRequest is the admin payload for creating or updating staff accounts.
// Password is optional on update (blank keeps the current one).
type UserRequest struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Password        string         `json:"password"`
	Role            string         `json:"role"`
	IsActive        *bool          `json:"isActive"`
	TrainingRecords datatypes.JSON `json:"trainingRecords"`
}

func validRole(role string) bool {
	return role == models.RoleAdmin || role == models.RoleStaff
}

// listUsers returns all accounts (password hashes never serialize)
func (r *Router) listUsers(w http.ResponseWriter, req *http.Request) {
	var users []models.User
	if err := r.db.Order("name").Find(&users).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// getUser returns a single account
func (r *Router) getUser(w http.ResponseWriter, req *http.Request) {
	var user models.User
	if err := r.db.First(&user, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// createUser creates a staff or admin account
func (r *Router) createUser(w http.ResponseWriter, req *http.Request) {
	var body UserRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" || body.Email == "" || len(body.Password) < 8 {
		respondError(w, http.StatusBadRequest, "name, email and a password of at least 8 characters are required")
		return
	}
	if body.Role == "" {
		body.Role = models.RoleStaff
	}
	if !validRole(body.Role) {
		respondError(w, http.StatusBadRequest, "role must be admin or staff")
		return
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Name:            body.Name,
		Email:           body.Email,
		Password:        hashed,
		Role:            body.Role,
		IsActive:        true,
		TrainingRecords: body.TrainingRecords,
	}
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}

	if err := r.db.Create(&user).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create user (email might exist)")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// updateUser replaces an account's fields; the password only changes when a
// new one is supplied
func (r *Router) updateUser(w http.ResponseWriter, req *http.Request) {
	var user models.User
	if err := r.db.First(&user, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	var body UserRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" || body.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if body.Role != "" && !validRole(body.Role) {
		respondError(w, http.StatusBadRequest, "role must be admin or staff")
		return
	}

	user.Name = body.Name
	user.Email = body.Email
	if body.Role != "" {
		user.Role = body.Role
	}
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}
	user.TrainingRecords = body.TrainingRecords
	if body.Password != "" {
		if len(body.Password) < 8 {
			respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		hashed, err := utils.HashPassword(body.Password)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := r.db.Save(&user).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// deleteUser removes an account (soft delete; log attributions keep the name)
func (r *Router) deleteUser(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.User{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
