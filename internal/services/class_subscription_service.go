package services

import (
	"time"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSubscriptionService struct {
	db *gorm.DB
}

func NewClassSubscriptionService(db *gorm.DB) *ClassSubscriptionService {
	return &ClassSubscriptionService{db: db}
}

// resolveDayOfWeek returns the ISO day (1=Monday .. 7=Sunday) from the request
// value when set, otherwise derives it from the date. Zero means underivable.
func resolveDayOfWeek(requested int, date *time.Time) int {
	if requested >= 1 && requested <= 7 {
		return requested
	}
	if date == nil {
		return 0
	}
	day := int(date.Weekday())
	if day == 0 {
		return 7
	}
	return day
}

// validSlotTime accepts HH:MM wall-clock strings.
func validSlotTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func errDuplicateSlot() error {
	return invalidf("subscription already exists for this slot")
}

// Create registers a class subscription. Exactly one of the recurrent and
// date-bound forms must hold; date-bound slots additionally respect the class
// capacity.
func (s *ClassSubscriptionService) Create(userID uuid.UUID, req *dto.CreateSubscriptionRequest) (*models.ClassSubscription, error) {
	if !validSlotTime(req.StartTime) || !validSlotTime(req.EndTime) {
		return nil, invalidf("start and end times must be HH:MM")
	}
	if req.EndTime <= req.StartTime {
		return nil, invalidf("end time must be after start time")
	}

	sub := models.ClassSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		ClassID:   req.ClassID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Date:      req.Date,
		Recurrent: req.Recurrent,
		Active:    true,
	}
	if !sub.ExclusiveFormOK() {
		return nil, invalidf("exactly one of recurrent or date must be set")
	}

	sub.DayOfWeek = resolveDayOfWeek(req.DayOfWeek, req.Date)
	if sub.DayOfWeek == 0 {
		return nil, invalidf("day of week is required for recurrent subscriptions")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, "id = ?", req.ClassID).Error; err != nil {
			return notFoundf("class %s", req.ClassID)
		}
		if !class.Active {
			return invalidf("class is not active")
		}

		// Duplicate detection: recurrent slots dedupe on the weekly tuple,
		// date-bound slots on the exact date as well.
		dup := tx.Model(&models.ClassSubscription{}).
			Where("user_id = ? AND class_id = ? AND day_of_week = ? AND start_time = ? AND end_time = ? AND active = true",
				userID, req.ClassID, sub.DayOfWeek, req.StartTime, req.EndTime)
		if sub.Recurrent {
			dup = dup.Where("date IS NULL")
		} else {
			dup = dup.Where("date = ?", *sub.Date)
		}
		var dupCount int64
		if err := dup.Count(&dupCount).Error; err != nil {
			return err
		}
		if dupCount > 0 {
			return errDuplicateSlot()
		}

		// Capacity applies to date-bound slots only.
		if !sub.Recurrent {
			var taken int64
			if err := tx.Model(&models.ClassSubscription{}).
				Where("class_id = ? AND date = ? AND start_time = ? AND end_time = ? AND active = true",
					req.ClassID, *sub.Date, req.StartTime, req.EndTime).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken >= int64(class.Capacity) {
				return invalidf("class is fully booked for this slot")
			}
		}

		return tx.Create(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *ClassSubscriptionService) Get(id uuid.UUID) (*models.ClassSubscription, error) {
	var sub models.ClassSubscription
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		return nil, notFoundf("subscription %s", id)
	}
	return &sub, nil
}

func (s *ClassSubscriptionService) ListByUser(userID uuid.UUID, p pagination.Params) ([]models.ClassSubscription, int64, error) {
	var subs []models.ClassSubscription
	var total int64

	query := s.db.Model(&models.ClassSubscription{}).Where("user_id = ?", userID)
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&subs).Error; err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (s *ClassSubscriptionService) ListByClass(classID uuid.UUID, p pagination.Params) ([]models.ClassSubscription, int64, error) {
	var subs []models.ClassSubscription
	var total int64

	query := s.db.Model(&models.ClassSubscription{}).Where("class_id = ?", classID)
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&subs).Error; err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (s *ClassSubscriptionService) Deactivate(id uuid.UUID) error {
	result := s.db.Model(&models.ClassSubscription{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("subscription %s", id)
	}
	return nil
}
