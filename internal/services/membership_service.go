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

type MembershipService struct {
	db       *gorm.DB
	payments *PaymentService
	now      func() time.Time
}

func NewMembershipService(db *gorm.DB, payments *PaymentService) *MembershipService {
	return &MembershipService{db: db, payments: payments, now: time.Now}
}

// Assign creates a membership for a user. The product must be active, the
// user may hold at most one ACTIVE membership per product, and the date range
// must be ordered. Missing dates derive from the product duration.
func (s *MembershipService) Assign(assignedBy uuid.UUID, req *dto.AssignMembershipRequest) (*models.UserMembership, error) {
	now := s.now()

	var membership models.UserMembership
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", req.UserID).Error; err != nil {
			return notFoundf("user %s", req.UserID)
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			return notFoundf("product %s", req.ProductID)
		}
		if !product.Active {
			return invalidf("product is not active")
		}

		startDate := now
		if req.StartDate != nil {
			startDate = *req.StartDate
		}
		endDate := startDate.AddDate(0, 0, product.DurationDays)
		if req.EndDate != nil {
			endDate = *req.EndDate
		}
		if endDate.Before(startDate) {
			return invalidf("end date must not precede start date")
		}

		var activeCount int64
		if err := tx.Model(&models.UserMembership{}).
			Where("user_id = ? AND product_id = ? AND status = ? AND active = true",
				req.UserID, req.ProductID, models.MembershipActive).
			Count(&activeCount).Error; err != nil {
			return err
		}
		if activeCount > 0 {
			return conflictf("user already has an active membership for this product")
		}

		membership = models.UserMembership{
			ID:            uuid.New(),
			UserID:        req.UserID,
			ProductID:     req.ProductID,
			StartDate:     startDate,
			EndDate:       endDate,
			Status:        models.MembershipActive,
			Active:        true,
			AssignedByID:  &assignedBy,
			TotalAmount:   product.Price,
			PaidAmount:    0,
			PendingAmount: product.Price,
			Notes:         req.Notes,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (s *MembershipService) Get(id uuid.UUID) (*dto.MembershipResponse, error) {
	var membership models.UserMembership
	if err := s.db.First(&membership, "id = ?", id).Error; err != nil {
		return nil, notFoundf("membership %s", id)
	}
	return s.toResponse(&membership), nil
}

func (s *MembershipService) ListByUser(userID uuid.UUID, p pagination.Params) ([]dto.MembershipResponse, int64, error) {
	var memberships []models.UserMembership
	var total int64

	query := s.db.Model(&models.UserMembership{}).Where("user_id = ?", userID)
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&memberships).Error; err != nil {
		return nil, 0, err
	}

	responses := make([]dto.MembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *s.toResponse(&memberships[i])
	}
	return responses, total, nil
}

// Extend pushes the end date out by the requested days and appends an audit
// note.
func (s *MembershipService) Extend(id uuid.UUID, req *dto.ExtendMembershipRequest) (*dto.MembershipResponse, error) {
	var membership models.UserMembership
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&membership, "id = ?", id).Error; err != nil {
			return notFoundf("membership %s", id)
		}

		membership.EndDate = membership.EndDate.AddDate(0, 0, req.Days)
		note := fmt.Sprintf("[%s] extended by %d days", s.now().Format("2006-01-02"), req.Days)
		if req.Reason != "" {
			note += ": " + req.Reason
		}
		if membership.Notes != "" {
			membership.Notes += "\n"
		}
		membership.Notes += note

		return tx.Save(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(&membership), nil
}

// Status setters are direct writes; any state can be set from any state.
func (s *MembershipService) Activate(id uuid.UUID, reason string) (*dto.MembershipResponse, error) {
	return s.setStatus(id, models.MembershipActive, true, reason)
}

func (s *MembershipService) Cancel(id uuid.UUID, reason string) (*dto.MembershipResponse, error) {
	return s.setStatus(id, models.MembershipCancelled, false, reason)
}

func (s *MembershipService) Suspend(id uuid.UUID, reason string) (*dto.MembershipResponse, error) {
	return s.setStatus(id, models.MembershipSuspended, true, reason)
}

func (s *MembershipService) Expire(id uuid.UUID, reason string) (*dto.MembershipResponse, error) {
	return s.setStatus(id, models.MembershipExpired, false, reason)
}

func (s *MembershipService) setStatus(id uuid.UUID, status string, active bool, reason string) (*dto.MembershipResponse, error) {
	var membership models.UserMembership
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&membership, "id = ?", id).Error; err != nil {
			return notFoundf("membership %s", id)
		}

		membership.Status = status
		membership.Active = active
		if reason != "" {
			note := fmt.Sprintf("[%s] %s: %s", s.now().Format("2006-01-02"), status, reason)
			if membership.Notes != "" {
				membership.Notes += "\n"
			}
			membership.Notes += note
		}

		return tx.Save(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(&membership), nil
}

// AddPayment records a payment against the membership through the payment
// service, which also refreshes the derived amounts.
func (s *MembershipService) AddPayment(id uuid.UUID, req *dto.AddMembershipPaymentRequest) (*models.Payment, error) {
	return s.payments.CreateForMembership(id, req)
}

func (s *MembershipService) toResponse(m *models.UserMembership) *dto.MembershipResponse {
	return &dto.MembershipResponse{
		ID:              m.ID,
		UserID:          m.UserID,
		ProductID:       m.ProductID,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Status:          m.Status,
		EffectiveStatus: m.EffectiveStatus(s.now()),
		Active:          m.Active,
		AssignedByID:    m.AssignedByID,
		TotalAmount:     m.TotalAmount,
		PaidAmount:      m.PaidAmount,
		PendingAmount:   m.PendingAmount,
		FullyPaid:       m.FullyPaid(),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}
