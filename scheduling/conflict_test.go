package scheduling

import (
	"testing"

	"github.com/google/uuid"
)

func window(status string, start, end int) BookingWindow {
	return BookingWindow{ID: uuid.New(), StartMin: start, EndMin: end, Status: status}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name     string
		existing []BookingWindow
		start    int
		end      int
		want     bool
	}{
		{
			name:     "no bookings",
			existing: nil,
			start:    600, end: 660,
			want: false,
		},
		{
			name:     "overlapping pending booking conflicts",
			existing: []BookingWindow{window(StatusPending, 600, 660)},
			start:    630, end: 690,
			want: true,
		},
		{
			name:     "overlapping confirmed booking conflicts",
			existing: []BookingWindow{window(StatusConfirmed, 600, 660)},
			start:    630, end: 690,
			want: true,
		},
		{
			name:     "overlapping awaiting-assignment booking conflicts",
			existing: []BookingWindow{window(StatusAwaitingAssignment, 600, 660)},
			start:    600, end: 660,
			want: true,
		},
		{
			name:     "cancelled booking never conflicts",
			existing: []BookingWindow{window(StatusCancelled, 600, 660)},
			start:    600, end: 660,
			want: false,
		},
		{
			name:     "completed booking never conflicts",
			existing: []BookingWindow{window(StatusCompleted, 600, 660)},
			start:    600, end: 660,
			want: false,
		},
		{
			name:     "back-to-back is free",
			existing: []BookingWindow{window(StatusConfirmed, 600, 660)},
			start:    660, end: 720,
			want: false,
		},
		{
			name: "one active among terminals",
			existing: []BookingWindow{
				window(StatusCancelled, 600, 660),
				window(StatusCompleted, 600, 660),
				window(StatusConfirmed, 640, 700),
			},
			start: 600, end: 660,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.existing, tt.start, tt.end, uuid.Nil); got != tt.want {
				t.Errorf("HasConflict = %v, want %v", got, tt.want)
			}
		})
	}
}

// Editing a booking's own slot excludes that booking from the check.
func TestHasConflictExclusion(t *testing.T) {
	mine := window(StatusConfirmed, 600, 660)
	other := window(StatusConfirmed, 720, 780)
	existing := []BookingWindow{mine, other}

	if !HasConflict(existing, 600, 660, uuid.Nil) {
		t.Fatal("expected conflict without exclusion")
	}
	if HasConflict(existing, 600, 660, mine.ID) {
		t.Error("booking conflicts with itself even when excluded")
	}
	if !HasConflict(existing, 700, 760, mine.ID) {
		t.Error("exclusion of one booking hid a conflict with another")
	}
}

// A second identical request arriving before the first is released must be
// rejected; once the first booking reaches a terminal status the slot frees.
func TestRepeatRequestRejectedUntilTerminal(t *testing.T) {
	first := window(StatusPending, 600, 660)
	existing := []BookingWindow{first}

	if !HasConflict(existing, 600, 660, uuid.Nil) {
		t.Fatal("second identical request was not rejected")
	}

	var err error
	first.Status, err = transitionOrFail(t, first.Status, EventConfirm)
	if err != nil {
		t.Fatal(err)
	}
	existing[0] = first
	if !HasConflict(existing, 600, 660, uuid.Nil) {
		t.Fatal("confirmed booking stopped blocking its slot")
	}

	first.Status, err = transitionOrFail(t, first.Status, EventComplete)
	if err != nil {
		t.Fatal(err)
	}
	existing[0] = first
	if HasConflict(existing, 600, 660, uuid.Nil) {
		t.Error("completed booking still blocks its slot")
	}
}

func transitionOrFail(t *testing.T, from, event string) (string, error) {
	t.Helper()
	next, appErr := Transition(from, event)
	if appErr != nil {
		return "", appErr
	}
	return next, nil
}

func TestSlotOverlaps(t *testing.T) {
	existing := []SlotWindow{
		{ID: uuid.New(), StartMin: 540, EndMin: 720},
		{ID: uuid.New(), StartMin: 840, EndMin: 960},
	}

	tests := []struct {
		name  string
		start int
		end   int
		want  bool
	}{
		{"inside first slot", 600, 660, true},
		{"spans the gap edges", 700, 850, true},
		{"exactly the gap", 720, 840, false},
		{"after everything", 960, 1020, false},
		{"before everything", 480, 540, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotOverlaps(existing, tt.start, tt.end); got != tt.want {
				t.Errorf("SlotOverlaps(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
