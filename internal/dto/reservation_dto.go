package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
}

type CreateSubscriptionRequest struct {
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	StartTime string     `json:"start_time" validate:"required,len=5"` // HH:MM
	EndTime   string     `json:"end_time" validate:"required,len=5"`   // HH:MM
	Date      *time.Time `json:"date"`
	DayOfWeek int        `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	Recurrent bool       `json:"recurrent"`
}
