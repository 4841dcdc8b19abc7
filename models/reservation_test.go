package models

import (
	"testing"
	"time"
)

func TestReservationStatusPredicates(t *testing.T) {
	tests := []struct {
		status    string
		occupying bool
		terminal  bool
	}{
		{ReservationStatusActive, true, false},
		{ReservationStatusModified, true, false},
		{ReservationStatusCancelled, false, true},
		{ReservationStatusPassed, false, true},
		{"bogus", false, false},
	}

	for _, tt := range tests {
		r := Reservation{Status: tt.status}
		if got := r.Occupying(); got != tt.occupying {
			t.Errorf("Occupying() with status %q = %v, want %v", tt.status, got, tt.occupying)
		}
		if got := r.Terminal(); got != tt.terminal {
			t.Errorf("Terminal() with status %q = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestReservationPatch(t *testing.T) {
	if !(ReservationPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}

	notes := "notes"
	if (ReservationPatch{Notes: &notes}).Empty() {
		t.Error("patch with notes should not be empty")
	}
	if (ReservationPatch{Notes: &notes}).ChangesInterval() {
		t.Error("notes-only patch should not change the interval")
	}

	start := time.Now()
	if !(ReservationPatch{Start: &start}).ChangesInterval() {
		t.Error("start patch should change the interval")
	}
	resource := "room-1"
	if !(ReservationPatch{ResourceID: &resource}).ChangesInterval() {
		t.Error("resource patch should change the interval")
	}
}
