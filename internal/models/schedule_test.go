package models

import (
	"testing"
	"time"
)

func TestScheduleOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	existing := Schedule{StartTime: at(0), EndTime: at(2)} // 10:00-12:00

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", at(0), at(2), true},
		{"contained inside", at(0).Add(30 * time.Minute), at(1), true},
		{"overlapping tail", at(1), at(3), true},
		{"overlapping head", at(-1), at(1), true},
		{"covering interval", at(-1), at(3), true},
		{"touching at end is free", at(2), at(3), false},
		{"touching at start is free", at(-2), at(0), false},
		{"fully before", at(-3), at(-1), false},
		{"fully after", at(3), at(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := existing.Overlaps(tt.start, tt.end); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestReservationTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	t.Run("cancel only while active and before start", func(t *testing.T) {
		r := Reservation{Status: ReservationActive}
		if !r.CanCancel(future, now) {
			t.Fatal("active reservation before start must be cancellable")
		}
		if r.CanCancel(past, now) {
			t.Fatal("reservation for a started schedule must not be cancellable")
		}
		for _, status := range []string{ReservationCanceled, ReservationAttended, ReservationNoShow} {
			r := Reservation{Status: status}
			if r.CanCancel(future, now) {
				t.Fatalf("status %s must not be cancellable", status)
			}
		}
	})

	t.Run("marking requires active status", func(t *testing.T) {
		r := Reservation{Status: ReservationActive}
		if !r.CanMark() {
			t.Fatal("active reservation must be markable")
		}
		for _, status := range []string{ReservationCanceled, ReservationAttended, ReservationNoShow} {
			r := Reservation{Status: status}
			if r.CanMark() {
				t.Fatalf("status %s must not be markable", status)
			}
			if !r.IsTerminal() {
				t.Fatalf("status %s must be terminal", status)
			}
		}
	})
}

func TestClassSubscriptionExclusiveForm(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		recurrent bool
		date      *time.Time
		want      bool
	}{
		{"recurrent without date", true, nil, true},
		{"date-bound with date", false, &date, true},
		{"recurrent with date", true, &date, false},
		{"neither recurrent nor dated", false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := ClassSubscription{Recurrent: tt.recurrent, Date: tt.date}
			if got := cs.ExclusiveFormOK(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
