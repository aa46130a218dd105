package services

import (
	"fmt"
	"strings"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// generateSKU builds a stable identifier from the product name plus a short
// random suffix, e.g. "GOLD-MONTHLY-3F2A9C".
func generateSKU(name string) string {
	slug := strings.ToUpper(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if len(slug) > 40 {
		slug = slug[:40]
	}
	if slug == "" {
		slug = "PRODUCT"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return slug + "-" + suffix
}

func (s *ProductService) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	if req.BranchID != nil {
		var branch models.Branch
		if err := s.db.First(&branch, "id = ?", *req.BranchID).Error; err != nil {
			return nil, notFoundf("branch %s", *req.BranchID)
		}
	}

	sku := req.SKU
	if sku == "" {
		sku = generateSKU(req.Name)
	} else {
		var existing models.Product
		if err := s.db.Where("sku = ?", sku).First(&existing).Error; err == nil {
			return nil, conflictf("sku %q already exists", sku)
		}
	}

	product := models.Product{
		ID:              uuid.New(),
		Name:            req.Name,
		Category:        req.Category,
		SKU:             sku,
		MembershipType:  req.MembershipType,
		Price:           req.Price,
		DurationDays:    req.DurationDays,
		MaxUsers:        req.MaxUsers,
		Active:          true,
		AutoRenewal:     req.AutoRenewal,
		TrialPeriodDays: req.TrialPeriodDays,
		BranchID:        req.BranchID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) List(branchID *uuid.UUID, activeOnly bool, p pagination.Params) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := s.db.Model(&models.Product{})
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if activeOnly {
		query = query.Where("active = true")
	}
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, notFoundf("product %s", id)
	}
	return &product, nil
}

func (s *ProductService) Update(id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, notFoundf("product %s", id)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.MembershipType != nil {
		product.MembershipType = *req.MembershipType
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, invalidf("price must be positive")
		}
		product.Price = *req.Price
	}
	if req.DurationDays != nil {
		if *req.DurationDays <= 0 {
			return nil, invalidf("duration must be positive")
		}
		product.DurationDays = *req.DurationDays
	}
	if req.MaxUsers != nil {
		product.MaxUsers = req.MaxUsers
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.AutoRenewal != nil {
		product.AutoRenewal = *req.AutoRenewal
	}
	if req.TrialPeriodDays != nil {
		product.TrialPeriodDays = *req.TrialPeriodDays
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Deactivate(id uuid.UUID) error {
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundf("product %s", id)
	}
	return nil
}
