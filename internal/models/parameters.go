package models

import (
	"encoding/json"
	"time"

	"github.com/chefcheck/chefcheck/internal/compliance"
	"gorm.io/datatypes"
)

// SystemParametersID is the fixed primary key of the singleton row. Updates
// always address it; a second row can never be created through the API.
const SystemParametersID = "default"

// NotificationSettings controls alerting channels
type NotificationSettings struct {
	EmailAlerts bool `json:"emailAlerts"`
	SMSAlerts   bool `json:"smsAlerts"`
}

// SystemParameters is the singleton site configuration row. The temperature
// ranges are the category defaults used when an appliance has no explicit
// min/max of its own.
type SystemParameters struct {
	ID                string         `gorm:"primaryKey" json:"id"`
	TemperatureRanges datatypes.JSON `gorm:"type:jsonb" json:"temperatureRanges"`
	Notifications     datatypes.JSON `gorm:"type:jsonb" json:"notifications"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for SystemParameters model
func (SystemParameters) TableName() string {
	return "system_parameters"
}

// ComplianceDefaults decodes the stored category ranges for the evaluator
func (p *SystemParameters) ComplianceDefaults() (compliance.Defaults, error) {
	var d compliance.Defaults
	if len(p.TemperatureRanges) == 0 {
		return DefaultRanges(), nil
	}
	if err := json.Unmarshal(p.TemperatureRanges, &d); err != nil {
		return compliance.Defaults{}, err
	}
	return d, nil
}

// DefaultRanges returns the standard HACCP category ranges in degrees Celsius
func DefaultRanges() compliance.Defaults {
	return compliance.Defaults{
		Fridge:  compliance.Range{Min: 0, Max: 5},
		Freezer: compliance.Range{Min: -25, Max: -18},
		HotHold: compliance.Range{Min: 63, Max: 100},
	}
}

// DefaultParameters builds the singleton row created on first boot
func DefaultParameters() SystemParameters {
	ranges, _ := json.Marshal(DefaultRanges())
	notifications, _ := json.Marshal(NotificationSettings{EmailAlerts: true, SMSAlerts: false})
	return SystemParameters{
		ID:                SystemParametersID,
		TemperatureRanges: ranges,
		Notifications:     notifications,
	}
}
