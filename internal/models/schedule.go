package models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is a concrete time interval instance of a Class. Active schedules
// of the same class never overlap; the service rejects conflicting writes.
type Schedule struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Class        Class         `gorm:"foreignKey:ClassID" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"-"`
}

// Overlaps reports whether [start,end) intersects this schedule's interval.
// Half-open test: touching endpoints do not conflict.
func (s *Schedule) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

// IsFuture reports whether the schedule has not started yet.
func (s *Schedule) IsFuture(now time.Time) bool {
	return s.StartTime.After(now)
}
