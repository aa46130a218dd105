package services

import (
	"fmt"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassService struct {
	db *gorm.DB
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{db: db}
}

func (s *ClassService) Create(createdBy uuid.UUID, req *dto.CreateClassRequest) (*models.Class, error) {
	var branch models.Branch
	if err := s.db.First(&branch, "id = ?", req.BranchID).Error; err != nil {
		return nil, notFoundf("branch %s", req.BranchID)
	}

	class := models.Class{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Active:      true,
		BranchID:    req.BranchID,
		CreatedByID: &createdBy,
	}
	if err := s.db.Create(&class).Error; err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return &class, nil
}

func (s *ClassService) List(branchID *uuid.UUID, activeOnly bool, p pagination.Params) ([]models.Class, int64, error) {
	var classes []models.Class
	var total int64

	query := s.db.Model(&models.Class{})
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if activeOnly {
		query = query.Where("active = true")
	}
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&classes).Error; err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (s *ClassService) Get(id uuid.UUID) (*models.Class, error) {
	var class models.Class
	if err := s.db.Preload("Schedules", "active = true").First(&class, "id = ?", id).Error; err != nil {
		return nil, notFoundf("class %s", id)
	}
	return &class, nil
}

func (s *ClassService) Update(id uuid.UUID, req *dto.UpdateClassRequest) (*models.Class, error) {
	var class models.Class
	if err := s.db.First(&class, "id = ?", id).Error; err != nil {
		return nil, notFoundf("class %s", id)
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Description != nil {
		class.Description = *req.Description
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, invalidf("capacity must be positive")
		}
		class.Capacity = *req.Capacity
	}
	if req.Active != nil {
		class.Active = *req.Active
	}

	if err := s.db.Save(&class).Error; err != nil {
		return nil, fmt.Errorf("failed to update class: %w", err)
	}
	return &class, nil
}

// Delete removes the class together with its schedules and their
// reservations (FK cascade).
func (s *ClassService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Class{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("class %s", id)
	}
	return nil
}
