package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role values gate access to admin-only operations.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents a staff member or administrator
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type User struct {
	ID              string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `gorm:"unique;not null" json:"email"`
	Password        string         `gorm:"not null" json:"-"`
	Role            string         `gorm:"default:'staff'" json:"role"`
	IsActive        bool           `gorm:"default:true" json:"isActive"`
	LastLogin       *time.Time     `json:"lastLogin,omitempty"`
	TrainingRecords datatypes.JSON `gorm:"type:jsonb" json:"trainingRecords,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may perform admin-only operations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
