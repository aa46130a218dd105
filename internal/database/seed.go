package database

import (
	"fmt"
	"log/slog"

	"github.com/atlasfit/gym-backend/internal/config"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultRoles = []models.Role{
	{Name: models.RoleSuperAdmin, Description: "Full access across all branches"},
	{Name: models.RoleBranchAdmin, Description: "Manages a single branch"},
	{Name: models.RoleUser, Description: "Gym member"},
	{Name: models.RoleInstructor, Description: "Runs classes and marks attendance"},
}

// SeedRoles inserts the built-in roles when absent. Existing rows are left
// untouched.
func SeedRoles() error {
	for _, role := range defaultRoles {
		var existing models.Role
		err := DB.Where("name = ?", role.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up role %s: %w", role.Name, err)
		}
		role.ID = uuid.New()
		if err := DB.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
		slog.Info("role seeded", "role", role.Name)
	}
	return nil
}

// SeedSuperAdmin creates the bootstrap admin account from config. A no-op
// when the credentials are unset or the email already exists.
func SeedSuperAdmin(cfg *config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var existing models.User
	if err := DB.Where("email = ?", cfg.SeedAdminEmail).First(&existing).Error; err == nil {
		return nil
	}

	var role models.Role
	if err := DB.Where("name = ?", models.RoleSuperAdmin).First(&role).Error; err != nil {
		return fmt.Errorf("super admin role missing: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := models.User{
		ID:       uuid.New(),
		Name:     "Super Admin",
		Email:    cfg.SeedAdminEmail,
		Password: string(hash),
		Active:   true,
		RoleID:   role.ID,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed super admin: %w", err)
	}

	slog.Info("super admin seeded", "email", cfg.SeedAdminEmail)
	return nil
}
