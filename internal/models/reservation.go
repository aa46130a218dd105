package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation statuses. ACTIVE is the only non-terminal state.
const (
	ReservationActive   = "ACTIVE"
	ReservationCanceled = "CANCELED"
	ReservationAttended = "ATTENDED"
	ReservationNoShow   = "NO_SHOW"
)

// Reservation is a user's booking of one schedule occurrence. The
// (user_id, schedule_id) pair is unique at the database level.
type Reservation struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_user_schedule" json:"user_id"`
	ScheduleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_user_schedule" json:"schedule_id"`
	ReservationDate time.Time `gorm:"not null" json:"reservation_date"`
	Status          string    `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Schedule Schedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}

// IsTerminal reports whether the reservation reached a final state.
func (r *Reservation) IsTerminal() bool {
	return r.Status != ReservationActive
}

// CanCancel allows cancellation only while ACTIVE and before the schedule
// starts.
func (r *Reservation) CanCancel(scheduleStart, now time.Time) bool {
	return r.Status == ReservationActive && scheduleStart.After(now)
}

// CanMark reports whether attendance or no-show may still be recorded.
func (r *Reservation) CanMark() bool {
	return r.Status == ReservationActive
}
