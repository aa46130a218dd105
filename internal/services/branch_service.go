package services

import (
	"fmt"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchService struct {
	db *gorm.DB
}

func NewBranchService(db *gorm.DB) *BranchService {
	return &BranchService{db: db}
}

func (s *BranchService) Create(req *dto.CreateBranchRequest) (*models.Branch, error) {
	var existing models.Branch
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, conflictf("branch name %q already exists", req.Name)
	}

	branch := models.Branch{
		ID:         uuid.New(),
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Active:     true,
	}
	if err := s.db.Create(&branch).Error; err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return &branch, nil
}

func (s *BranchService) List(p pagination.Params) ([]models.Branch, int64, error) {
	var branches []models.Branch
	var total int64

	query := s.db.Model(&models.Branch{})
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&branches).Error; err != nil {
		return nil, 0, err
	}
	return branches, total, nil
}

func (s *BranchService) Get(id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	if err := s.db.First(&branch, "id = ?", id).Error; err != nil {
		return nil, notFoundf("branch %s", id)
	}
	return &branch, nil
}

func (s *BranchService) Update(id uuid.UUID, req *dto.UpdateBranchRequest) (*models.Branch, error) {
	var branch models.Branch
	if err := s.db.First(&branch, "id = ?", id).Error; err != nil {
		return nil, notFoundf("branch %s", id)
	}

	if req.Name != nil && *req.Name != branch.Name {
		var existing models.Branch
		if err := s.db.Where("name = ? AND id <> ?", *req.Name, id).First(&existing).Error; err == nil {
			return nil, conflictf("branch name %q already exists", *req.Name)
		}
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.PostalCode != nil {
		branch.PostalCode = *req.PostalCode
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Active != nil {
		branch.Active = *req.Active
	}

	if err := s.db.Save(&branch).Error; err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return &branch, nil
}

// Delete removes a branch. Blocked while any user still references it.
func (s *BranchService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var branch models.Branch
		if err := tx.First(&branch, "id = ?", id).Error; err != nil {
			return notFoundf("branch %s", id)
		}

		var userCount int64
		if err := tx.Model(&models.User{}).Where("branch_id = ?", id).Count(&userCount).Error; err != nil {
			return err
		}
		if userCount > 0 {
			return conflictf("branch has %d users assigned", userCount)
		}

		return tx.Delete(&branch).Error
	})
}
