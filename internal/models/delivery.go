package models

import "time"

// DeliveryLog records a goods-in check for a supplier delivery.
// IsCompliant is the receiver's overall judgment of the delivery; it is
// caller-supplied, not computed from the item flags.
type DeliveryLog struct {
	ID               string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SupplierID       string         `gorm:"type:uuid;not null;index" json:"supplierId"`
	DeliveryTime     time.Time      `gorm:"not null;index" json:"deliveryTime"`
	VehicleReg       string         `json:"vehicleReg,omitempty"`
	DriverName       string         `json:"driverName,omitempty"`
	OverallCondition string         `json:"overallCondition,omitempty"`
	IsCompliant      bool           `json:"isCompliant"`
	CorrectiveAction string         `json:"correctiveAction,omitempty"`
	ReceivedBy       string         `json:"receivedBy,omitempty"`
	Items            []DeliveryItem `gorm:"foreignKey:DeliveryLogID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for DeliveryLog model
func (DeliveryLog) TableName() string {
	return "delivery_logs"
}

// DeliveryItem is a single line of a delivery, checked independently.
// Temperature is only set for chilled/frozen goods.
type DeliveryItem struct {
	ID            string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	DeliveryLogID string   `gorm:"type:uuid;not null;index" json:"deliveryLogId"`
	Name          string   `gorm:"not null" json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	Temperature   *float64 `json:"temperature,omitempty"`
	IsCompliant   bool     `json:"isCompliant"`
	Notes         string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for DeliveryItem model
func (DeliveryItem) TableName() string {
	return "delivery_items"
}
