package models

import "time"

// ProductionLog records a production batch against its critical limits.
// Whether the limit was met is a human judgment, so IsCompliant is
// caller-supplied and authoritative.
type ProductionLog struct {
	ID                   string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ProductName          string    `gorm:"not null" json:"productName"`
	BatchCode            string    `gorm:"not null;index" json:"batchCode"`
	LogTime              time.Time `gorm:"not null;index" json:"logTime"`
	CriticalLimitDetails string    `json:"criticalLimitDetails"`
	IsCompliant          bool      `json:"isCompliant"`
	CorrectiveAction     string    `json:"correctiveAction,omitempty"`
	VerifiedBy           string    `json:"verifiedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for ProductionLog model
func (ProductionLog) TableName() string {
	return "production_logs"
}
