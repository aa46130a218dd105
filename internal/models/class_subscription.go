package models

import (
	"time"

	"github.com/google/uuid"
)

// ClassSubscription is a recurring or date-specific enrollment in a class
// time slot. Exactly one of the two forms must hold: recurrent with no date,
// or date-bound with a concrete date.
type ClassSubscription struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ClassID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"class_id"`
	StartTime string     `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string     `gorm:"size:5;not null" json:"end_time"`   // HH:MM
	Date      *time.Time `gorm:"type:date" json:"date,omitempty"`
	DayOfWeek int        `gorm:"not null" json:"day_of_week"` // 1=Monday .. 7=Sunday
	Recurrent bool       `gorm:"default:false" json:"recurrent"`
	Active    bool       `gorm:"default:true" json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Class Class `gorm:"foreignKey:ClassID" json:"-"`
}

// ExclusiveFormOK checks the recurrent-xor-date rule: recurrent subscriptions
// carry no date, date-bound subscriptions carry exactly one.
func (cs *ClassSubscription) ExclusiveFormOK() bool {
	if cs.Recurrent {
		return cs.Date == nil
	}
	return cs.Date != nil
}
