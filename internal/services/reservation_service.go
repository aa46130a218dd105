package services

import (
	"time"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db, now: time.Now}
}

// Create books a schedule for a user. Preconditions, checked in order:
// the schedule exists and is active; it starts in the future; the user has no
// reservation for it yet; the user holds no other ACTIVE reservation at the
// exact same start time. Class capacity is deliberately not checked here —
// available spots is a query, see ScheduleService.AvailableSpots.
func (s *ReservationService) Create(userID uuid.UUID, req *dto.CreateReservationRequest) (*models.Reservation, error) {
	now := s.now()

	var reservation models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var schedule models.Schedule
		if err := tx.First(&schedule, "id = ?", req.ScheduleID).Error; err != nil {
			return notFoundf("schedule %s", req.ScheduleID)
		}
		if !schedule.Active {
			return invalidf("schedule is not active")
		}
		if !schedule.IsFuture(now) {
			return invalidf("schedule has already started")
		}

		var existing models.Reservation
		if err := tx.Where("user_id = ? AND schedule_id = ?", userID, req.ScheduleID).
			First(&existing).Error; err == nil {
			return conflictf("user already has a reservation for this schedule")
		}

		// Same user, same start time, different class: double-booking.
		var clash int64
		if err := tx.Model(&models.Reservation{}).
			Joins("JOIN schedules ON schedules.id = reservations.schedule_id").
			Where("reservations.user_id = ? AND reservations.status = ?", userID, models.ReservationActive).
			Where("schedules.start_time = ?", schedule.StartTime).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return conflictf("user already has an active reservation at this time")
		}

		reservation = models.Reservation{
			ID:              uuid.New(),
			UserID:          userID,
			ScheduleID:      req.ScheduleID,
			ReservationDate: now,
			Status:          models.ReservationActive,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) Cancel(id uuid.UUID) (*models.Reservation, error) {
	return s.transition(id, models.ReservationCanceled, true)
}

func (s *ReservationService) MarkAttended(id uuid.UUID) (*models.Reservation, error) {
	return s.transition(id, models.ReservationAttended, false)
}

func (s *ReservationService) MarkNoShow(id uuid.UUID) (*models.Reservation, error) {
	return s.transition(id, models.ReservationNoShow, false)
}

// cancelGuard reports why a reservation may not be cancelled, nil when it may.
// Terminal states and already-started schedules are rejected for different
// reasons.
func cancelGuard(r *models.Reservation, scheduleStart, now time.Time) error {
	if r.IsTerminal() {
		return invalidf("reservation cannot be cancelled from status %s", r.Status)
	}
	if !scheduleStart.After(now) {
		return invalidf("schedule has already started")
	}
	return nil
}

func markGuard(r *models.Reservation) error {
	if !r.CanMark() {
		return invalidf("reservation cannot be marked from status %s", r.Status)
	}
	return nil
}

// transition moves an ACTIVE reservation into a terminal state. Cancellation
// additionally requires the schedule not to have started.
func (s *ReservationService) transition(id uuid.UUID, target string, requireFuture bool) (*models.Reservation, error) {
	now := s.now()

	var reservation models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Schedule").First(&reservation, "id = ?", id).Error; err != nil {
			return notFoundf("reservation %s", id)
		}

		if requireFuture {
			if err := cancelGuard(&reservation, reservation.Schedule.StartTime, now); err != nil {
				return err
			}
		} else if err := markGuard(&reservation); err != nil {
			return err
		}

		reservation.Status = target
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete hard-deletes a reservation. Attended reservations stay on record.
func (s *ReservationService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, "id = ?", id).Error; err != nil {
			return notFoundf("reservation %s", id)
		}
		if reservation.Status == models.ReservationAttended {
			return conflictf("attended reservations cannot be deleted")
		}
		return tx.Delete(&reservation).Error
	})
}

func (s *ReservationService) Get(id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Preload("Schedule").First(&reservation, "id = ?", id).Error; err != nil {
		return nil, notFoundf("reservation %s", id)
	}
	return &reservation, nil
}

func (s *ReservationService) ListByUser(userID uuid.UUID, p pagination.Params) ([]models.Reservation, int64, error) {
	return s.list(s.db.Where("user_id = ?", userID), p)
}

func (s *ReservationService) ListBySchedule(scheduleID uuid.UUID, p pagination.Params) ([]models.Reservation, int64, error) {
	return s.list(s.db.Where("schedule_id = ?", scheduleID), p)
}

func (s *ReservationService) list(query *gorm.DB, p pagination.Params) ([]models.Reservation, int64, error) {
	var reservations []models.Reservation
	var total int64

	query = query.Model(&models.Reservation{})
	query.Count(&total)

	if err := query.Preload("Schedule").Scopes(p.Scope()).Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}
