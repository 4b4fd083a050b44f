package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chefcheck/chefcheck/internal/compliance"
	"github.com/chefcheck/chefcheck/internal/models"
	"gorm.io/datatypes"
)

// getParameters returns the singleton system parameters row, creating it with
// defaults if first read beats the boot-time bootstrap
func (r *Router) getParameters(w http.ResponseWriter, req *http.Request) {
	var params models.SystemParameters
	err := r.db.Where(models.SystemParameters{ID: models.SystemParametersID}).
		Attrs(models.DefaultParameters()).
		FirstOrCreate(&params).Error
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, params)
}

// updateParameters updates the singleton row. The id in the path of updates
// is always the fixed singleton id; a second row cannot be created here.
func (r *Router) updateParameters(w http.ResponseWriter, req *http.Request) {
	var body struct {
		TemperatureRanges *compliance.Defaults         `json:"temperatureRanges"`
		Notifications     *models.NotificationSettings `json:"notifications"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var params models.SystemParameters
	err := r.db.Where(models.SystemParameters{ID: models.SystemParametersID}).
		Attrs(models.DefaultParameters()).
		FirstOrCreate(&params).Error
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if body.TemperatureRanges != nil {
		for _, rng := range []compliance.Range{body.TemperatureRanges.Fridge, body.TemperatureRanges.Freezer, body.TemperatureRanges.HotHold} {
			if rng.Min > rng.Max {
				respondError(w, http.StatusBadRequest, "each range needs min <= max")
				return
			}
		}
		raw, err := json.Marshal(body.TemperatureRanges)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid temperature ranges")
			return
		}
		params.TemperatureRanges = datatypes.JSON(raw)
	}
	if body.Notifications != nil {
		raw, err := json.Marshal(body.Notifications)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid notification settings")
			return
		}
		params.Notifications = datatypes.JSON(raw)
	}

	if err := r.db.Save(&params).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, params)
}
