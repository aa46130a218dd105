package models

import (
	"time"

	"github.com/google/uuid"
)

// Class is a recurring activity offering with a fixed capacity.
type Class struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"size:150;not null" json:"name"`
	Description string     `gorm:"size:500" json:"description"`
	Capacity    int        `gorm:"not null" json:"capacity"`
	Active      bool       `gorm:"default:true" json:"active"`
	BranchID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"branch_id"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Branch    Branch     `gorm:"foreignKey:BranchID" json:"-"`
	Schedules []Schedule `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"schedules,omitempty"`
}
