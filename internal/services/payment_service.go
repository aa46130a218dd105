package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentService struct {
	db      *gorm.DB
	gateway *PaymentGateway
	now     func() time.Time
}

func NewPaymentService(db *gorm.DB, gateway *PaymentGateway) *PaymentService {
	return &PaymentService{db: db, gateway: gateway, now: time.Now}
}

// Create records a PENDING payment. ONLINE payments additionally get a Snap
// checkout token from the gateway.
func (s *PaymentService) Create(req *dto.CreatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", req.UserID).Error; err != nil {
			return notFoundf("user %s", req.UserID)
		}

		if req.ReservationID != nil {
			var reservation models.Reservation
			if err := tx.First(&reservation, "id = ?", *req.ReservationID).Error; err != nil {
				return notFoundf("reservation %s", *req.ReservationID)
			}
		}
		if req.UserMembershipID != nil {
			var membership models.UserMembership
			if err := tx.First(&membership, "id = ?", *req.UserMembershipID).Error; err != nil {
				return notFoundf("membership %s", *req.UserMembershipID)
			}
		}

		currency := req.Currency
		if currency == "" {
			currency = "USD"
		}

		payment = models.Payment{
			ID:               uuid.New(),
			UserID:           req.UserID,
			ReservationID:    req.ReservationID,
			UserMembershipID: req.UserMembershipID,
			Amount:           req.Amount,
			Currency:         currency,
			Status:           models.PaymentPending,
			PaymentMethod:    req.PaymentMethod,
			Description:      req.Description,
		}

		if req.PaymentMethod == models.PaymentMethodOnline {
			token, redirectURL, err := s.gateway.Checkout(
				payment.ID.String(), payment.Amount, payment.Description, user.Name, user.Email)
			if err != nil {
				return invalidf("gateway checkout failed: %v", err)
			}
			payment.GatewayToken = token
			payment.GatewayRedirectURL = redirectURL
		}

		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Get(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, notFoundf("payment %s", id)
	}
	return &payment, nil
}

func (s *PaymentService) ListByUser(userID uuid.UUID, p pagination.Params) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := s.db.Model(&models.Payment{}).Where("user_id = ?", userID)
	query.Count(&total)

	if err := query.Scopes(p.Scope()).Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// MarkCompleted transitions PENDING → COMPLETED and refreshes the linked
// membership's totals.
func (s *PaymentService) MarkCompleted(id uuid.UUID, req *dto.CompletePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "id = ?", id).Error; err != nil {
			return notFoundf("payment %s", id)
		}
		if err := payment.MarkCompleted(req.TransactionID, req.GatewayReference, s.now()); err != nil {
			return invalidf("%v", err)
		}
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		return s.recomputeMembershipTotals(tx, payment.UserMembershipID)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkFailed and CancelPayment both require a PENDING payment.
func (s *PaymentService) MarkFailed(id uuid.UUID) (*models.Payment, error) {
	return s.closePending(id, models.PaymentFailed)
}

func (s *PaymentService) CancelPayment(id uuid.UUID) (*models.Payment, error) {
	return s.closePending(id, models.PaymentCancelled)
}

func (s *PaymentService) closePending(id uuid.UUID, target string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "id = ?", id).Error; err != nil {
			return notFoundf("payment %s", id)
		}
		if payment.Status != models.PaymentPending {
			return invalidf("payment is not pending")
		}
		payment.Status = target
		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Refund applies a full or partial refund per the 30-day window rule.
func (s *PaymentService) Refund(id uuid.UUID, req *dto.RefundPaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "id = ?", id).Error; err != nil {
			return notFoundf("payment %s", id)
		}
		if err := payment.ProcessRefund(req.Amount, req.Reason, s.now()); err != nil {
			return invalidf("%v", err)
		}
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		return s.recomputeMembershipTotals(tx, payment.UserMembershipID)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// HandleGatewayNotification applies a Midtrans transaction status to the
// payment named by the notification's order id. Unknown statuses are ignored
// so gateway retries stay idempotent.
func (s *PaymentService) HandleGatewayNotification(n *dto.GatewayNotification) error {
	paymentID, err := uuid.Parse(n.OrderID)
	if err != nil {
		return invalidf("malformed order id %q", n.OrderID)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			return notFoundf("payment %s", paymentID)
		}

		if raw, err := json.Marshal(n); err == nil {
			payment.GatewayPayload = datatypes.JSON(raw)
		}

		switch n.TransactionStatus {
		case "capture", "settlement":
			if n.FraudStatus != "" && n.FraudStatus != "accept" {
				slog.Warn("gateway notification held by fraud status",
					"payment_id", paymentID, "fraud_status", n.FraudStatus)
				return tx.Save(&payment).Error
			}
			if err := payment.MarkCompleted(n.TransactionID, n.PaymentType, s.now()); err != nil {
				// Already settled; keep the stored payload update only.
				return tx.Save(&payment).Error
			}
		case "deny", "expire", "failure":
			if payment.Status == models.PaymentPending {
				payment.Status = models.PaymentFailed
			}
		case "cancel":
			if payment.Status == models.PaymentPending {
				payment.Status = models.PaymentCancelled
			}
		default:
			slog.Info("ignoring gateway notification status",
				"payment_id", paymentID, "status", n.TransactionStatus)
		}

		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		return s.recomputeMembershipTotals(tx, payment.UserMembershipID)
	})
}

// recomputeMembershipTotals rebuilds a membership's paid/pending amounts from
// the COMPLETED (net of refunds) payments linked to it. No-op without a link.
func (s *PaymentService) recomputeMembershipTotals(tx *gorm.DB, membershipID *uuid.UUID) error {
	if membershipID == nil {
		return nil
	}

	var membership models.UserMembership
	if err := tx.First(&membership, "id = ?", *membershipID).Error; err != nil {
		return notFoundf("membership %s", *membershipID)
	}

	var payments []models.Payment
	if err := tx.Where("user_membership_id = ?", *membershipID).Find(&payments).Error; err != nil {
		return err
	}

	var paid float64
	for _, p := range payments {
		switch p.Status {
		case models.PaymentCompleted, models.PaymentPartiallyRefunded, models.PaymentRefunded:
			paid += p.NetAmount()
		}
	}

	membership.PaidAmount = paid
	membership.PendingAmount = membership.TotalAmount - paid
	return tx.Save(&membership).Error
}

func (s *PaymentService) mustFindMembershipUser(tx *gorm.DB, membership *models.UserMembership) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", membership.UserID).Error; err != nil {
		return nil, fmt.Errorf("membership user missing: %w", err)
	}
	return &user, nil
}

// CreateForMembership records a payment against a membership. CASH and CARD
// payments settle immediately; ONLINE ones stay PENDING until the gateway
// notification arrives.
func (s *PaymentService) CreateForMembership(membershipID uuid.UUID, req *dto.AddMembershipPaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var membership models.UserMembership
		if err := tx.First(&membership, "id = ?", membershipID).Error; err != nil {
			return notFoundf("membership %s", membershipID)
		}

		currency := req.Currency
		if currency == "" {
			currency = "USD"
		}

		payment = models.Payment{
			ID:               uuid.New(),
			UserID:           membership.UserID,
			UserMembershipID: &membership.ID,
			Amount:           req.Amount,
			Currency:         currency,
			Status:           models.PaymentPending,
			PaymentMethod:    req.PaymentMethod,
			Description:      req.Description,
		}

		switch req.PaymentMethod {
		case models.PaymentMethodOnline:
			user, err := s.mustFindMembershipUser(tx, &membership)
			if err != nil {
				return err
			}
			token, redirectURL, err := s.gateway.Checkout(
				payment.ID.String(), payment.Amount, payment.Description, user.Name, user.Email)
			if err != nil {
				return invalidf("gateway checkout failed: %v", err)
			}
			payment.GatewayToken = token
			payment.GatewayRedirectURL = redirectURL
		default:
			// Money changed hands at the desk.
			txnID := "POS-" + payment.ID.String()[:8]
			if err := payment.MarkCompleted(txnID, req.PaymentMethod, s.now()); err != nil {
				return err
			}
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return s.recomputeMembershipTotals(tx, payment.UserMembershipID)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
