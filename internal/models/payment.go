package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payment statuses.
const (
	PaymentPending           = "PENDING"
	PaymentCompleted         = "COMPLETED"
	PaymentFailed            = "FAILED"
	PaymentCancelled         = "CANCELLED"
	PaymentRefunded          = "REFUNDED"
	PaymentPartiallyRefunded = "PARTIALLY_REFUNDED"
)

// Payment methods.
const (
	PaymentMethodCash   = "CASH"
	PaymentMethodCard   = "CARD"
	PaymentMethodOnline = "ONLINE"
)

// RefundWindow is how long after the payment date a refund stays allowed.
const RefundWindow = 30 * 24 * time.Hour

var (
	ErrPaymentNotPending    = errors.New("payment is not pending")
	ErrPaymentNotRefundable = errors.New("payment cannot be refunded")
	ErrRefundExceedsAmount  = errors.New("refund amount exceeds payment amount")
)

// Payment is a recorded monetary transaction tied to a user, optionally to a
// reservation and to a membership's cost tracking.
type Payment struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ReservationID      *uuid.UUID     `gorm:"type:uuid;index" json:"reservation_id,omitempty"`
	UserMembershipID   *uuid.UUID     `gorm:"type:uuid;index" json:"user_membership_id,omitempty"`
	Amount             float64        `gorm:"not null" json:"amount"`
	Currency           string         `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Status             string         `gorm:"size:25;not null;default:'PENDING';index" json:"status"`
	PaymentMethod      string         `gorm:"size:20;not null" json:"payment_method"`
	TransactionID      *string        `gorm:"size:100;uniqueIndex" json:"transaction_id,omitempty"`
	GatewayReference   string         `gorm:"size:100" json:"gateway_reference,omitempty"`
	GatewayToken       string         `gorm:"size:100" json:"gateway_token,omitempty"`
	GatewayRedirectURL string         `gorm:"size:255" json:"gateway_redirect_url,omitempty"`
	GatewayPayload     datatypes.JSON `gorm:"type:jsonb" json:"-"`
	PaymentDate        *time.Time     `json:"payment_date,omitempty"`
	RefundAmount       *float64       `json:"refund_amount,omitempty"`
	RefundReason       string         `gorm:"size:255" json:"refund_reason,omitempty"`
	RefundedAt         *time.Time     `json:"refunded_at,omitempty"`
	Description        string         `gorm:"size:255" json:"description,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`

	User           User            `gorm:"foreignKey:UserID" json:"-"`
	Reservation    *Reservation    `gorm:"foreignKey:ReservationID" json:"-"`
	UserMembership *UserMembership `gorm:"foreignKey:UserMembershipID" json:"-"`
}

// MarkCompleted transitions PENDING → COMPLETED and records the gateway
// identifiers and payment date. Any other starting state is rejected.
func (p *Payment) MarkCompleted(transactionID, gatewayReference string, now time.Time) error {
	if p.Status != PaymentPending {
		return ErrPaymentNotPending
	}
	p.Status = PaymentCompleted
	if transactionID != "" {
		p.TransactionID = &transactionID
	}
	p.GatewayReference = gatewayReference
	p.PaymentDate = &now
	return nil
}

// CanBeRefunded requires COMPLETED status, no prior refund and a payment date
// within the refund window.
func (p *Payment) CanBeRefunded(now time.Time) bool {
	if p.Status != PaymentCompleted || p.RefundAmount != nil || p.PaymentDate == nil {
		return false
	}
	return now.Sub(*p.PaymentDate) <= RefundWindow
}

// ProcessRefund refunds the given amount. A full-amount refund sets REFUNDED,
// anything less sets PARTIALLY_REFUNDED.
func (p *Payment) ProcessRefund(amount float64, reason string, now time.Time) error {
	if !p.CanBeRefunded(now) {
		return ErrPaymentNotRefundable
	}
	if amount <= 0 || amount > p.Amount {
		return ErrRefundExceedsAmount
	}
	if amount == p.Amount {
		p.Status = PaymentRefunded
	} else {
		p.Status = PaymentPartiallyRefunded
	}
	p.RefundAmount = &amount
	p.RefundReason = reason
	p.RefundedAt = &now
	return nil
}

// NetAmount is the amount kept after any refund.
func (p *Payment) NetAmount() float64 {
	if p.RefundAmount == nil {
		return p.Amount
	}
	return p.Amount - *p.RefundAmount
}
