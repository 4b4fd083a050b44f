package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/chefcheck/chefcheck/internal/buildinfo"
	"github.com/chefcheck/chefcheck/internal/compliance"
	"github.com/chefcheck/chefcheck/internal/config"
	"github.com/chefcheck/chefcheck/internal/database"
	"github.com/chefcheck/chefcheck/internal/middleware"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/websocket"
	"github.com/chefcheck/chefcheck/web"
	"github.com/gorilla/mux"
)

// Router wraps the mux router, database and collaborators
type Router struct {
	*mux.Router
	db   *database.DB
	cfg  *config.Config
	auth *middleware.Auth
	hub  *websocket.Hub
}

// NewRouter creates a new HTTP router with all routes. The authorization
// policy lives here, not in the handlers: routes are registered on one of two
// subrouters ("authenticated" and "admin") and never re-check roles
// themselves.
func NewRouter(db *database.DB, cfg *config.Config, hub *websocket.Hub) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		cfg:    cfg,
		auth:   middleware.NewAuth(cfg.JWTSecret),
		hub:    hub,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// One-time bootstrap (shared secret header, no session)
	r.HandleFunc("/api/setup/create-admin", r.createFirstAdmin).Methods("POST")

	// Live activity feed (token passed as query parameter)
	r.HandleFunc("/ws", r.serveWS)

	// Routes any authenticated user may call: reads plus the staff
	// data-entry actions (log creation, checklist completion).
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(r.auth.Authenticate)

	authed.HandleFunc("/me", r.me).Methods("GET")
	authed.HandleFunc("/activity", r.recentActivity).Methods("GET")
	authed.HandleFunc("/parameters", r.getParameters).Methods("GET")

	authed.HandleFunc("/suppliers", r.listSuppliers).Methods("GET")
	authed.HandleFunc("/suppliers/{id}", r.getSupplier).Methods("GET")
	authed.HandleFunc("/appliances", r.listAppliances).Methods("GET")
	authed.HandleFunc("/appliances/{id}", r.getAppliance).Methods("GET")

	authed.HandleFunc("/temperature-logs", r.listTemperatureLogs).Methods("GET")
	authed.HandleFunc("/temperature-logs", r.createTemperatureLog).Methods("POST")
	authed.HandleFunc("/temperature-logs/{id}", r.getTemperatureLog).Methods("GET")

	authed.HandleFunc("/delivery-logs", r.listDeliveryLogs).Methods("GET")
	authed.HandleFunc("/delivery-logs", r.createDeliveryLog).Methods("POST")
	authed.HandleFunc("/delivery-logs/{id}", r.getDeliveryLog).Methods("GET")

	authed.HandleFunc("/production-logs", r.listProductionLogs).Methods("GET")
	authed.HandleFunc("/production-logs", r.createProductionLog).Methods("POST")
	authed.HandleFunc("/production-logs/{id}", r.getProductionLog).Methods("GET")

	authed.HandleFunc("/cleaning-tasks", r.listCleaningTasks).Methods("GET")
	authed.HandleFunc("/cleaning-tasks/{id}", r.getCleaningTask).Methods("GET")
	authed.HandleFunc("/cleaning-items", r.listCleaningItems).Methods("GET")
	authed.HandleFunc("/cleaning-items/{id}", r.getCleaningItem).Methods("GET")
	authed.HandleFunc("/cleaning-items/{id}/complete", r.completeCleaningItem).Methods("PUT")
	authed.HandleFunc("/cleaning-items/{id}/reopen", r.reopenCleaningItem).Methods("PUT")

	// Admin-only: reference data management, log corrections, user admin,
	// system parameters and report export.
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(r.auth.Authenticate, r.auth.RequireRole(models.RoleAdmin))

	admin.HandleFunc("/suppliers", r.createSupplier).Methods("POST")
	admin.HandleFunc("/suppliers/{id}", r.updateSupplier).Methods("PUT")
	admin.HandleFunc("/suppliers/{id}", r.deleteSupplier).Methods("DELETE")

	admin.HandleFunc("/appliances", r.createAppliance).Methods("POST")
	admin.HandleFunc("/appliances/{id}", r.updateAppliance).Methods("PUT")
	admin.HandleFunc("/appliances/{id}", r.deleteAppliance).Methods("DELETE")
	admin.HandleFunc("/appliances/{id}/qr", r.applianceQR).Methods("GET")
	admin.HandleFunc("/appliances/labels", r.applianceLabels).Methods("POST")

	admin.HandleFunc("/temperature-logs/{id}", r.updateTemperatureLog).Methods("PUT")
	admin.HandleFunc("/temperature-logs/{id}", r.deleteTemperatureLog).Methods("DELETE")
	admin.HandleFunc("/delivery-logs/{id}", r.updateDeliveryLog).Methods("PUT")
	admin.HandleFunc("/delivery-logs/{id}", r.deleteDeliveryLog).Methods("DELETE")
	admin.HandleFunc("/production-logs/{id}", r.updateProductionLog).Methods("PUT")
	admin.HandleFunc("/production-logs/{id}", r.deleteProductionLog).Methods("DELETE")

	admin.HandleFunc("/cleaning-tasks", r.createCleaningTask).Methods("POST")
	admin.HandleFunc("/cleaning-tasks/{id}", r.updateCleaningTask).Methods("PUT")
	admin.HandleFunc("/cleaning-tasks/{id}", r.deleteCleaningTask).Methods("DELETE")
	admin.HandleFunc("/cleaning-items", r.createCleaningItem).Methods("POST")
	admin.HandleFunc("/cleaning-items/{id}", r.updateCleaningItem).Methods("PUT")
	admin.HandleFunc("/cleaning-items/{id}", r.deleteCleaningItem).Methods("DELETE")

	admin.HandleFunc("/users", r.listUsers).Methods("GET")
	admin.HandleFunc("/users", r.createUser).Methods("POST")
	admin.HandleFunc("/users/{id}", r.getUser).Methods("GET")
	admin.HandleFunc("/users/{id}", r.updateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}", r.deleteUser).Methods("DELETE")

	admin.HandleFunc("/parameters", r.updateParameters).Methods("PUT")
	admin.HandleFunc("/reports/compliance", r.complianceReport).Methods("GET")

	// Static files - embedded frontend build
	if fsys, err := web.GetFileSystem(); err == nil {
		r.PathPrefix("/").Handler(http.FileServer(http.FS(fsys)))
	} else {
		log.Printf("Static frontend unavailable: %v", err)
	}

	return r
}

// Handler returns the root handler for the HTTP server
func (r *Router) Handler() http.Handler {
	return r.Router
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"startedAt": buildinfo.StartTime,
		"build":     buildinfo.CommitHash,
	})
}

// serveWS upgrades dashboard connections after validating the token passed
// as a query parameter (browsers cannot set headers on websocket upgrades)
func (r *Router) serveWS(w http.ResponseWriter, req *http.Request) {
	token := req.URL.Query().Get("token")
	if token == "" {
		respondError(w, http.StatusUnauthorized, "Token required")
		return
	}
	if _, err := r.auth.ValidateToken(token); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	websocket.ServeWs(r.hub, w, req)
}

// complianceDefaults loads the category fallback ranges from the singleton
// parameters row, falling back to the standard defaults if it is missing or
// malformed
func (r *Router) complianceDefaults() compliance.Defaults {
	var params models.SystemParameters
	if err := r.db.First(&params, "id = ?", models.SystemParametersID).Error; err != nil {
		return models.DefaultRanges()
	}
	d, err := params.ComplianceDefaults()
	if err != nil {
		log.Printf("Malformed temperature ranges in system parameters: %v", err)
		return models.DefaultRanges()
	}
	return d
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
