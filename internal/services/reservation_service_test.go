package services

import (
	"strings"
	"testing"
	"time"

	"github.com/atlasfit/gym-backend/internal/models"
)

func TestCancelGuard(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour)
	past := now.Add(-2 * time.Hour)

	tests := []struct {
		name    string
		status  string
		start   time.Time
		wantMsg string
	}{
		{"active and future cancels", models.ReservationActive, future, ""},
		{"cancelled is terminal", models.ReservationCanceled, future, "from status CANCELED"},
		{"attended is terminal", models.ReservationAttended, future, "from status ATTENDED"},
		{"no-show is terminal", models.ReservationNoShow, future, "from status NO_SHOW"},
		{"started schedule blocks", models.ReservationActive, past, "already started"},
		{"starting right now blocks", models.ReservationActive, now, "already started"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &models.Reservation{Status: tt.status}
			err := cancelGuard(r, tt.start, now)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestMarkGuard(t *testing.T) {
	if err := markGuard(&models.Reservation{Status: models.ReservationActive}); err != nil {
		t.Fatalf("expected nil for ACTIVE, got %v", err)
	}
	if err := markGuard(&models.Reservation{Status: models.ReservationAttended}); err == nil {
		t.Fatal("expected an error for ATTENDED")
	}
}
