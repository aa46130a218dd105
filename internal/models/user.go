package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a member, instructor or back-office admin. Soft deletion is the
// Active flag; DeletedAt is only set on explicit account removal.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Phone     string         `gorm:"size:30" json:"phone"`
	Gender    string         `gorm:"size:20" json:"gender"`
	Active    bool           `gorm:"default:true" json:"active"`
	RoleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"role_id"`
	BranchID  *uuid.UUID     `gorm:"type:uuid;index" json:"branch_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Role   Role    `gorm:"foreignKey:RoleID" json:"role"`
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}
