package models

import (
	"testing"
	"time"
)

func completedPayment(amount float64, paidAgo time.Duration, now time.Time) Payment {
	paidAt := now.Add(-paidAgo)
	return Payment{
		Amount:      amount,
		Status:      PaymentCompleted,
		PaymentDate: &paidAt,
	}
}

func TestMarkCompleted(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := Payment{Status: PaymentPending, Amount: 100}
	if err := p.MarkCompleted("txn1", "ref1", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != PaymentCompleted {
		t.Fatalf("expected status COMPLETED, got %s", p.Status)
	}
	if p.TransactionID == nil || *p.TransactionID != "txn1" {
		t.Fatalf("expected transaction id txn1, got %v", p.TransactionID)
	}
	if p.PaymentDate == nil || !p.PaymentDate.Equal(now) {
		t.Fatalf("expected payment date %v, got %v", now, p.PaymentDate)
	}

	// Completing twice must fail: only PENDING may transition.
	if err := p.MarkCompleted("txn2", "ref2", now); err != ErrPaymentNotPending {
		t.Fatalf("expected ErrPaymentNotPending, got %v", err)
	}

	for _, status := range []string{PaymentFailed, PaymentCancelled, PaymentRefunded} {
		p := Payment{Status: status, Amount: 100}
		if err := p.MarkCompleted("txn", "ref", now); err != ErrPaymentNotPending {
			t.Fatalf("status %s: expected ErrPaymentNotPending, got %v", status, err)
		}
	}
}

func TestCanBeRefunded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payment Payment
		want    bool
	}{
		{
			name:    "completed within window",
			payment: completedPayment(100, 10*24*time.Hour, now),
			want:    true,
		},
		{
			name:    "completed on window boundary",
			payment: completedPayment(100, RefundWindow, now),
			want:    true,
		},
		{
			name:    "completed past window",
			payment: completedPayment(100, RefundWindow+time.Hour, now),
			want:    false,
		},
		{
			name:    "pending payment",
			payment: Payment{Amount: 100, Status: PaymentPending},
			want:    false,
		},
		{
			name: "already refunded amount set",
			payment: func() Payment {
				p := completedPayment(100, time.Hour, now)
				amt := 40.0
				p.RefundAmount = &amt
				return p
			}(),
			want: false,
		},
		{
			name:    "completed without payment date",
			payment: Payment{Amount: 100, Status: PaymentCompleted},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payment.CanBeRefunded(now); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestProcessRefund(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("amount above original fails", func(t *testing.T) {
		p := completedPayment(100, time.Hour, now)
		if err := p.ProcessRefund(150, "too much", now); err != ErrRefundExceedsAmount {
			t.Fatalf("expected ErrRefundExceedsAmount, got %v", err)
		}
		if p.Status != PaymentCompleted {
			t.Fatalf("failed refund must not change status, got %s", p.Status)
		}
	})

	t.Run("full refund sets REFUNDED", func(t *testing.T) {
		p := completedPayment(100, time.Hour, now)
		if err := p.ProcessRefund(100, "full", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != PaymentRefunded {
			t.Fatalf("expected REFUNDED, got %s", p.Status)
		}
		if p.NetAmount() != 0 {
			t.Fatalf("expected net amount 0, got %v", p.NetAmount())
		}
	})

	t.Run("partial refund sets PARTIALLY_REFUNDED", func(t *testing.T) {
		p := completedPayment(100, time.Hour, now)
		if err := p.ProcessRefund(40, "partial", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != PaymentPartiallyRefunded {
			t.Fatalf("expected PARTIALLY_REFUNDED, got %s", p.Status)
		}
		if p.RefundAmount == nil || *p.RefundAmount != 40 {
			t.Fatalf("expected refund amount 40, got %v", p.RefundAmount)
		}
		if p.NetAmount() != 60 {
			t.Fatalf("expected net amount 60, got %v", p.NetAmount())
		}
	})

	t.Run("second refund fails", func(t *testing.T) {
		p := completedPayment(100, time.Hour, now)
		if err := p.ProcessRefund(40, "partial", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.ProcessRefund(10, "again", now); err != ErrPaymentNotRefundable {
			t.Fatalf("expected ErrPaymentNotRefundable, got %v", err)
		}
	})

	t.Run("outside window fails", func(t *testing.T) {
		p := completedPayment(100, 31*24*time.Hour, now)
		if err := p.ProcessRefund(50, "late", now); err != ErrPaymentNotRefundable {
			t.Fatalf("expected ErrPaymentNotRefundable, got %v", err)
		}
	})
}
