package services

import (
	"testing"
	"time"
)

func TestResolveDayOfWeek(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // Monday
	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC) // Sunday
	friday := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC) // Friday

	tests := []struct {
		name      string
		requested int
		date      *time.Time
		want      int
	}{
		{"explicit value wins", 3, &friday, 3},
		{"derived from monday", 0, &monday, 1},
		{"derived from friday", 0, &friday, 5},
		{"sunday maps to 7", 0, &sunday, 7},
		{"out of range request falls back to date", 9, &friday, 5},
		{"nothing derivable", 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveDayOfWeek(tt.requested, tt.date); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestValidSlotTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "18:45", "23:59"}
	for _, s := range valid {
		if !validSlotTime(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "24:00", "12:60", "noon", "12-30"}
	for _, s := range invalid {
		if validSlotTime(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
