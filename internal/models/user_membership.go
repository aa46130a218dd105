package models

import (
	"time"

	"github.com/google/uuid"
)

// UserMembership statuses. State changes are direct writes; the effective
// state additionally folds in the end date, see EffectiveStatus.
const (
	MembershipActive    = "ACTIVE"
	MembershipExpired   = "EXPIRED"
	MembershipCancelled = "CANCELLED"
	MembershipSuspended = "SUSPENDED"
)

// UserMembership assigns a product to a user over a date range. Amounts are
// derived from the COMPLETED payments linked via Payment.UserMembershipID.
type UserMembership struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	EndDate       time.Time  `gorm:"not null" json:"end_date"`
	Status        string     `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	Active        bool       `gorm:"default:true" json:"active"`
	AssignedByID  *uuid.UUID `gorm:"type:uuid" json:"assigned_by_id"`
	TotalAmount   float64    `gorm:"default:0" json:"total_amount"`
	PaidAmount    float64    `gorm:"default:0" json:"paid_amount"`
	PendingAmount float64    `gorm:"default:0" json:"pending_amount"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// IsExpired depends only on the end date, never on the stored status.
func (m *UserMembership) IsExpired(now time.Time) bool {
	return now.After(m.EndDate)
}

// IsActive requires the active flag, an ACTIVE status and an unexpired range.
func (m *UserMembership) IsActive(now time.Time) bool {
	return m.Active && m.Status == MembershipActive && !m.IsExpired(now)
}

// EffectiveStatus is the status computed at read time. A stored ACTIVE whose
// end date has passed reads as EXPIRED; the stored value is never trusted on
// its own.
func (m *UserMembership) EffectiveStatus(now time.Time) string {
	if m.Status == MembershipActive && m.IsExpired(now) {
		return MembershipExpired
	}
	return m.Status
}

// FullyPaid reports whether no pending amount remains.
func (m *UserMembership) FullyPaid() bool {
	return m.PendingAmount <= 0
}
