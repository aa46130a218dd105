package services

import (
	"fmt"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	BranchID *uuid.UUID
	Role     string
	Active   *bool
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, conflictf("email %q already registered", req.Email)
	}

	var role models.Role
	if err := s.db.Where("name = ?", req.Role).First(&role).Error; err != nil {
		return nil, notFoundf("role %q", req.Role)
	}

	if req.BranchID != nil {
		var branch models.Branch
		if err := s.db.First(&branch, "id = ?", *req.BranchID).Error; err != nil {
			return nil, notFoundf("branch %s", *req.BranchID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
		Gender:   req.Gender,
		Active:   true,
		RoleID:   role.ID,
		BranchID: req.BranchID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Role = role
	return &user, nil
}

func (s *UserService) List(filter UserFilter, p pagination.Params) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.Role != "" {
		query = query.Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name = ?", filter.Role)
	}
	if filter.Active != nil {
		query = query.Where("users.active = ?", *filter.Active)
	}
	query.Count(&total)

	if err := query.Preload("Role").Preload("Branch").
		Scopes(p.Scope()).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").Preload("Branch").First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundf("user %s", id)
	}
	return &user, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundf("user %s", id)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Role != nil {
		var role models.Role
		if err := s.db.Where("name = ?", *req.Role).First(&role).Error; err != nil {
			return nil, notFoundf("role %q", *req.Role)
		}
		user.RoleID = role.ID
	}
	if req.BranchID != nil {
		var branch models.Branch
		if err := s.db.First(&branch, "id = ?", *req.BranchID).Error; err != nil {
			return nil, notFoundf("branch %s", *req.BranchID)
		}
		user.BranchID = req.BranchID
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Get(id)
}

// Deactivate is the soft delete: the row stays, the account stops working.
func (s *UserService) Deactivate(id uuid.UUID) error {
	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("user %s", id)
	}
	return nil
}

func (s *UserService) ChangePassword(id uuid.UUID, req *dto.ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return notFoundf("user %s", id)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hash)).Error; err != nil {
			return err
		}
		// Force re-login everywhere.
		return tx.Model(&models.RefreshToken{}).
			Where("user_id = ?", id).
			Update("revoked", true).Error
	})
}
