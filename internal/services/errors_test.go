package services

import (
	"errors"
	"testing"
	"time"

	"github.com/atlasfit/gym-backend/internal/models"
)

// Slot collisions and duplicate bookings are validation failures, so they must
// surface as 400s, not 409s.
func TestRejectionKinds(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		err  error
	}{
		{"schedule overlap", errScheduleOverlap(2)},
		{"duplicate subscription slot", errDuplicateSlot()},
		{"cancel from terminal status", cancelGuard(&models.Reservation{Status: models.ReservationAttended}, now.Add(time.Hour), now)},
		{"cancel after start", cancelGuard(&models.Reservation{Status: models.ReservationActive}, now.Add(-time.Hour), now)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Fatalf("%v is not ErrInvalidArgument", tt.err)
			}
			if errors.Is(tt.err, ErrConflict) {
				t.Fatalf("%v must not be ErrConflict", tt.err)
			}
		})
	}
}
