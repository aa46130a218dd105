package models

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a physical gym location. Users and products hang off a branch.
type Branch struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Address    string    `gorm:"size:255" json:"address"`
	City       string    `gorm:"size:100" json:"city"`
	PostalCode string    `gorm:"size:20" json:"postal_code"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
