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

// listCleaningTasks returns all cleaning task definitions
func (r *Router) listCleaningTasks(w http.ResponseWriter, req *http.Request) {
	var tasks []models.CleaningTask
	if err := r.db.Order("area, name").Find(&tasks).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// getCleaningTask returns a single task definition
func (r *Router) getCleaningTask(w http.ResponseWriter, req *http.Request) {
	var task models.CleaningTask
	if err := r.db.First(&task, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Cleaning task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// createCleaningTask creates a new task definition
func (r *Router) createCleaningTask(w http.ResponseWriter, req *http.Request) {
	var task models.CleaningTask
	if err := json.NewDecoder(req.Body).Decode(&task); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if task.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !models.ValidFrequency(task.Frequency) {
		respondError(w, http.StatusBadRequest, "frequency must be daily, weekly, monthly or as_needed")
		return
	}
	task.ID = ""

	if err := r.db.Create(&task).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

// updateCleaningTask replaces a task definition
func (r *Router) updateCleaningTask(w http.ResponseWriter, req *http.Request) {
	var task models.CleaningTask
	if err := r.db.First(&task, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Cleaning task not found")
		return
	}

	var body models.CleaningTask
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !models.ValidFrequency(body.Frequency) {
		respondError(w, http.StatusBadRequest, "frequency must be daily, weekly, monthly or as_needed")
		return
	}

	task.Name = body.Name
	task.Area = body.Area
	task.Frequency = body.Frequency
	task.Description = body.Description
	task.Equipment = body.Equipment

	if err := r.db.Save(&task).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// deleteCleaningTask removes a task definition
func (r *Router) deleteCleaningTask(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.CleaningTask{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Cleaning task not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// listCleaningItems returns all checklist occurrences
func (r *Router) listCleaningItems(w http.ResponseWriter, req *http.Request) {
	var items []models.CleaningChecklistItem
	if err := r.db.Order("created_at DESC").Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// getCleaningItem returns a single checklist occurrence
func (r *Router) getCleaningItem(w http.ResponseWriter, req *http.Request) {
	var item models.CleaningChecklistItem
	if err := r.db.First(&item, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Checklist item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// createCleaningItem creates a checklist occurrence from a task definition
func (r *Router) createCleaningItem(w http.ResponseWriter, req *http.Request) {
	var body struct {
		TaskID string `json:"taskId"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.TaskID == "" {
		respondError(w, http.StatusBadRequest, "taskId is required")
		return
	}

	var task models.CleaningTask
	if err := r.db.First(&task, "id = ?", body.TaskID).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Unknown cleaning task")
		return
	}

	item := models.CleaningChecklistItem{
		TaskID:    task.ID,
		Name:      task.Name,
		Area:      task.Area,
		Frequency: task.Frequency,
	}
	if err := r.db.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// completeCleaningItem marks an occurrence done. Staff action.
func (r *Router) completeCleaningItem(w http.ResponseWriter, req *http.Request) {
	var item models.CleaningChecklistItem
	if err := r.db.First(&item, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Checklist item not found")
		return
	}

	var body struct {
		CompletedBy string `json:"completedBy"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	completedBy := body.CompletedBy
	if completedBy == "" {
		completedBy = middleware.UserNameFrom(req.Context())
	}
	item.MarkComplete(completedBy, body.Notes, time.Now())

	if err := r.db.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	r.hub.Broadcast(map[string]interface{}{
		"type":  "activity",
		"entry": activity.FromCleaning(item),
	})

	respondJSON(w, http.StatusOK, item)
}

// reopenCleaningItem resets an occurrence to incomplete, clearing all
// completion metadata together
func (r *Router) reopenCleaningItem(w http.ResponseWriter, req *http.Request) {
	var item models.CleaningChecklistItem
	if err := r.db.First(&item, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Checklist item not found")
		return
	}

	item.MarkIncomplete()

	// Save skips zero values for cleared columns, so update them explicitly
	updates := map[string]interface{}{
		"completed":    false,
		"completed_at": nil,
		"completed_by": "",
		"notes":        "",
	}
	if err := r.db.Model(&item).Updates(updates).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// updateCleaningItem is the admin correction path for an occurrence
func (r *Router) updateCleaningItem(w http.ResponseWriter, req *http.Request) {
	var item models.CleaningChecklistItem
	if err := r.db.First(&item, "id = ?", mux.Vars(req)["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Checklist item not found")
		return
	}

	var body models.CleaningChecklistItem
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item.Name = body.Name
	item.Area = body.Area
	item.Frequency = body.Frequency
	if body.Completed {
		at := time.Now()
		if body.CompletedAt != nil {
			at = *body.CompletedAt
		}
		item.MarkComplete(body.CompletedBy, body.Notes, at)
	} else {
		// An incomplete item must not carry completion metadata
		item.MarkIncomplete()
	}

	updates := map[string]interface{}{
		"name":         item.Name,
		"area":         item.Area,
		"frequency":    item.Frequency,
		"completed":    item.Completed,
		"completed_at": item.CompletedAt,
		"completed_by": item.CompletedBy,
		"notes":        item.Notes,
	}
	if err := r.db.Model(&item).Updates(updates).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// deleteCleaningItem removes a checklist occurrence
func (r *Router) deleteCleaningItem(w http.ResponseWriter, req *http.Request) {
	result := r.db.Delete(&models.CleaningChecklistItem{}, "id = ?", mux.Vars(req)["id"])
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Checklist item not found")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
