package models

import (
	"time"

	"gorm.io/gorm"
)

// Appliance is a monitored piece of equipment (fridge, freezer, oven...).
// MinTemp/MaxTemp are optional: when both are set they define the appliance's
// own compliance range, otherwise the category default from SystemParameters
// applies based on keyword matching of Type.
type Appliance struct {
	ID       string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name     string   `gorm:"not null" json:"name"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	MinTemp  *float64 `json:"minTemp,omitempty"`
	MaxTemp  *float64 `json:"maxTemp,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Appliance model
func (Appliance) TableName() string {
	return "appliances"
}
