package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/utils"
)

// CreateAdminRequest is the payload for the one-time bootstrap endpoint
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createFirstAdmin creates the first admin account. It is guarded by a shared
// secret header and refuses once any admin exists, so it cannot be used to
// escalate after initial setup.
func (r *Router) createFirstAdmin(w http.ResponseWriter, req *http.Request) {
	if r.cfg.SetupSecret == "" {
		respondError(w, http.StatusForbidden, "Setup endpoint disabled")
		return
	}
	if req.Header.Get("X-Setup-Secret") != r.cfg.SetupSecret {
		respondError(w, http.StatusForbidden, "Invalid setup secret")
		return
	}

	var body CreateAdminRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" || body.Email == "" || len(body.Password) < 8 {
		respondError(w, http.StatusBadRequest, "name, email and a password of at least 8 characters are required")
		return
	}

	var adminCount int64
	if err := r.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if adminCount > 0 {
		respondError(w, http.StatusForbidden, "An admin account already exists")
		return
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	admin := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := r.db.Create(&admin).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, admin)
}
