package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable membership plan offered by a branch.
type Product struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string     `gorm:"size:150;not null" json:"name"`
	Category        string     `gorm:"size:50" json:"category"`
	SKU             string     `gorm:"size:64;not null;uniqueIndex" json:"sku"`
	MembershipType  string     `gorm:"size:50" json:"membership_type"`
	Price           float64    `gorm:"not null" json:"price"`
	DurationDays    int        `gorm:"not null" json:"duration_days"`
	MaxUsers        *int       `json:"max_users,omitempty"` // nil = unlimited
	Active          bool       `gorm:"default:true" json:"active"`
	AutoRenewal     bool       `gorm:"default:false" json:"auto_renewal"`
	TrialPeriodDays int        `gorm:"default:0" json:"trial_period_days"`
	BranchID        *uuid.UUID `gorm:"type:uuid;index" json:"branch_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Branch *Branch `gorm:"foreignKey:BranchID" json:"-"`
}
