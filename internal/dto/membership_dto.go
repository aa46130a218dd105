package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssignMembershipRequest struct {
	UserID    uuid.UUID  `json:"user_id" validate:"required"`
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     string     `json:"notes" validate:"omitempty,max=1000"`
}

type ExtendMembershipRequest struct {
	Days   int    `json:"days" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type MembershipStatusRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type AddMembershipPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=CASH CARD ONLINE"`
	Description   string  `json:"description" validate:"omitempty,max=255"`
}

// MembershipResponse decorates the stored row with its computed state.
type MembershipResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	ProductID       uuid.UUID  `json:"product_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	Active          bool       `json:"active"`
	AssignedByID    *uuid.UUID `json:"assigned_by_id,omitempty"`
	TotalAmount     float64    `json:"total_amount"`
	PaidAmount      float64    `json:"paid_amount"`
	PendingAmount   float64    `json:"pending_amount"`
	FullyPaid       bool       `json:"fully_paid"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
