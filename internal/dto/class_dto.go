package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClassRequest struct {
	Name        string    `json:"name" validate:"required,max=150"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	BranchID    uuid.UUID `json:"branch_id" validate:"required"`
}

type UpdateClassRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=150"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gt=0"`
	Active      *bool   `json:"active"`
}

type CreateScheduleRequest struct {
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

type UpdateScheduleRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Active    *bool      `json:"active"`
}

// AvailableSpotsResponse reports how many free slots a schedule still has.
type AvailableSpotsResponse struct {
	ScheduleID     uuid.UUID `json:"schedule_id"`
	Capacity       int       `json:"capacity"`
	ActiveBookings int64     `json:"active_bookings"`
	AvailableSpots int64     `json:"available_spots"`
}
