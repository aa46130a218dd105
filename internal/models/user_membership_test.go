package models

import (
	"testing"
	"time"
)

func TestMembershipIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		status  string
		want    bool
	}{
		{"end date in the future", now.AddDate(0, 1, 0), MembershipActive, false},
		{"end date exactly now", now, MembershipActive, false},
		{"end date in the past", now.AddDate(0, 0, -1), MembershipActive, true},
		{"expiry ignores stored status", now.AddDate(0, 0, -1), MembershipCancelled, true},
		{"stored EXPIRED but date in future", now.AddDate(0, 1, 0), MembershipExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := UserMembership{Status: tt.status, EndDate: tt.endDate}
			if got := m.IsExpired(now); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMembershipEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  string
		endDate time.Time
		want    string
	}{
		{"active and unexpired", MembershipActive, now.AddDate(0, 1, 0), MembershipActive},
		{"active but past end date", MembershipActive, now.AddDate(0, 0, -1), MembershipExpired},
		{"suspended stays suspended even past end date", MembershipSuspended, now.AddDate(0, 0, -1), MembershipSuspended},
		{"cancelled stays cancelled", MembershipCancelled, now.AddDate(0, 1, 0), MembershipCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := UserMembership{Status: tt.status, EndDate: tt.endDate}
			if got := m.EffectiveStatus(now); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMembershipIsActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		m      UserMembership
		want   bool
	}{
		{"active flag, ACTIVE status, unexpired", UserMembership{Active: true, Status: MembershipActive, EndDate: future}, true},
		{"inactive flag", UserMembership{Active: false, Status: MembershipActive, EndDate: future}, false},
		{"suspended status", UserMembership{Active: true, Status: MembershipSuspended, EndDate: future}, false},
		{"expired by date", UserMembership{Active: true, Status: MembershipActive, EndDate: past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsActive(now); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMembershipFullyPaid(t *testing.T) {
	if (&UserMembership{PendingAmount: 0.01}).FullyPaid() {
		t.Fatal("pending amount remaining must not be fully paid")
	}
	if !(&UserMembership{PendingAmount: 0}).FullyPaid() {
		t.Fatal("zero pending amount must be fully paid")
	}
	if !(&UserMembership{PendingAmount: -5}).FullyPaid() {
		t.Fatal("overpayment must count as fully paid")
	}
}
