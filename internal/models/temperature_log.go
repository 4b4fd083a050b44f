package models

import "time"

// TemperatureLog is a single reading taken from an appliance.
// IsCompliant is derived server-side from the appliance's effective range at
// write time and is never taken from the client.
type TemperatureLog struct {
	ID               string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ApplianceID      string    `gorm:"type:uuid;not null;index" json:"applianceId"`
	Temperature      float64   `gorm:"not null" json:"temperature"`
	LogTime          time.Time `gorm:"not null;index" json:"logTime"`
	IsCompliant      bool      `json:"isCompliant"`
	CorrectiveAction string    `json:"correctiveAction,omitempty"`
	LoggedBy         string    `json:"loggedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for TemperatureLog model
func (TemperatureLog) TableName() string {
	return "temperature_logs"
}
