package dto

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	UserID           uuid.UUID  `json:"user_id" validate:"required"`
	ReservationID    *uuid.UUID `json:"reservation_id"`
	UserMembershipID *uuid.UUID `json:"user_membership_id"`
	Amount           float64    `json:"amount" validate:"required,gt=0"`
	Currency         string     `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod    string     `json:"payment_method" validate:"required,oneof=CASH CARD ONLINE"`
	Description      string     `json:"description" validate:"omitempty,max=255"`
}

type CompletePaymentRequest struct {
	TransactionID    string `json:"transaction_id" validate:"required,max=100"`
	GatewayReference string `json:"gateway_reference" validate:"omitempty,max=100"`
}

type RefundPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Reason string  `json:"reason" validate:"required,max=255"`
}

// GatewayNotification is the subset of the Midtrans notification payload the
// webhook consumes. OrderID carries the payment id.
type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}
