package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Cleaning frequency values.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyMonthly  = "monthly"
	FrequencyAsNeeded = "as_needed"
)

// ValidFrequency reports whether f is one of the accepted frequency values
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAsNeeded:
		return true
	}
	return false
}

// CleaningTask is a recurring cleaning job definition (the template).
// Equipment is a JSON array of equipment/chemical names used for the task.
type CleaningTask struct {
	ID          string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Area        string         `json:"area"`
	Frequency   string         `gorm:"not null" json:"frequency"`
	Description string         `json:"description,omitempty"`
	Equipment   datatypes.JSON `gorm:"type:jsonb" json:"equipment,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for CleaningTask model
func (CleaningTask) TableName() string {
	return "cleaning_tasks"
}

// CleaningChecklistItem is one occurrence of a cleaning task. Occurrences are
// created explicitly; there is no automatic recurrence generation.
type CleaningChecklistItem struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TaskID      string     `gorm:"type:uuid;not null;index" json:"taskId"`
	Name        string     `gorm:"not null" json:"name"`
	Area        string     `json:"area"`
	Frequency   string     `json:"frequency"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`
	Notes       string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for CleaningChecklistItem model
func (CleaningChecklistItem) TableName() string {
	return "cleaning_checklist_items"
}

// MarkComplete records completion metadata on the item
func (c *CleaningChecklistItem) MarkComplete(by, notes string, at time.Time) {
	c.Completed = true
	c.CompletedAt = &at
	c.CompletedBy = by
	c.Notes = notes
}

// MarkIncomplete reopens the item. Completion metadata must not survive a
// reset: completedAt, completedBy and notes are cleared together.
func (c *CleaningChecklistItem) MarkIncomplete() {
	c.Completed = false
	c.CompletedAt = nil
	c.CompletedBy = ""
	c.Notes = ""
}
