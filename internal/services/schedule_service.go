package services

import (
	"fmt"
	"time"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// findOverlapping returns the active schedules of a class whose [start,end)
// interval intersects the candidate one. Half-open test: existing.start < end
// AND existing.end > start, so back-to-back slots never conflict. excludeID
// skips the schedule being updated.
func (s *ScheduleService) findOverlapping(tx *gorm.DB, classID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Schedule, error) {
	var overlapping []models.Schedule
	query := tx.Where("class_id = ? AND active = true", classID).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Find(&overlapping).Error; err != nil {
		return nil, err
	}
	return overlapping, nil
}

// A slot collision is a validation failure of the submitted interval, not a
// conflict on existing state.
func errScheduleOverlap(n int) error {
	return invalidf("schedule overlaps %d existing schedule(s) of this class", n)
}

func (s *ScheduleService) Create(req *dto.CreateScheduleRequest) (*models.Schedule, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, invalidf("end time must be after start time")
	}

	var schedule models.Schedule
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, "id = ?", req.ClassID).Error; err != nil {
			return notFoundf("class %s", req.ClassID)
		}

		overlapping, err := s.findOverlapping(tx, req.ClassID, req.StartTime, req.EndTime, nil)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return errScheduleOverlap(len(overlapping))
		}

		schedule = models.Schedule{
			ID:        uuid.New(),
			ClassID:   req.ClassID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Active:    true,
		}
		return tx.Create(&schedule).Error
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) Update(id uuid.UUID, req *dto.UpdateScheduleRequest) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&schedule, "id = ?", id).Error; err != nil {
			return notFoundf("schedule %s", id)
		}

		if req.StartTime != nil {
			schedule.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			schedule.EndTime = *req.EndTime
		}
		if req.Active != nil {
			schedule.Active = *req.Active
		}

		if !schedule.EndTime.After(schedule.StartTime) {
			return invalidf("end time must be after start time")
		}

		// Only an interval that stays (or becomes) active can conflict.
		if schedule.Active {
			overlapping, err := s.findOverlapping(tx, schedule.ClassID, schedule.StartTime, schedule.EndTime, &schedule.ID)
			if err != nil {
				return err
			}
			if len(overlapping) > 0 {
				return errScheduleOverlap(len(overlapping))
			}
		}

		return tx.Save(&schedule).Error
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) ListByClass(classID uuid.UUID, p pagination.Params) ([]models.Schedule, int64, error) {
	var schedules []models.Schedule
	var total int64

	query := s.db.Model(&models.Schedule{}).Where("class_id = ?", classID)
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&schedules).Error; err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

func (s *ScheduleService) Get(id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.db.Preload("Class").First(&schedule, "id = ?", id).Error; err != nil {
		return nil, notFoundf("schedule %s", id)
	}
	return &schedule, nil
}

func (s *ScheduleService) Deactivate(id uuid.UUID) error {
	result := s.db.Model(&models.Schedule{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("schedule %s", id)
	}
	return nil
}

// AvailableSpots is a query, not a creation-time guard: class capacity minus
// the schedule's ACTIVE reservations.
func (s *ScheduleService) AvailableSpots(id uuid.UUID) (*dto.AvailableSpotsResponse, error) {
	var schedule models.Schedule
	if err := s.db.Preload("Class").First(&schedule, "id = ?", id).Error; err != nil {
		return nil, notFoundf("schedule %s", id)
	}

	var active int64
	if err := s.db.Model(&models.Reservation{}).
		Where("schedule_id = ? AND status = ?", id, models.ReservationActive).
		Count(&active).Error; err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}

	spots := int64(schedule.Class.Capacity) - active
	if spots < 0 {
		spots = 0
	}

	return &dto.AvailableSpotsResponse{
		ScheduleID:     schedule.ID,
		Capacity:       schedule.Class.Capacity,
		ActiveBookings: active,
		AvailableSpots: spots,
	}, nil
}
