package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names seeded at startup.
const (
	RoleSuperAdmin  = "SUPER_ADMIN"
	RoleBranchAdmin = "BRANCH_ADMIN"
	RoleUser        = "USER"
	RoleInstructor  = "INSTRUCTOR"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
