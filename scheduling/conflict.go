package scheduling

import "github.com/google/uuid"

// BookingWindow is the slice of a persisted booking the conflict check
// needs: its identity, interval, and status. Callers load the windows for
// one provider and date; the date itself never enters the comparison.
type BookingWindow struct {
	ID       uuid.UUID
	StartMin int
	EndMin   int
	Status   string
}

// HasConflict reports whether any active window overlaps [startMin, endMin).
// A window whose ID equals exclude is skipped, which lets a booking be
// re-checked against everything except itself when its own slot is edited.
func HasConflict(existing []BookingWindow, startMin, endMin int, exclude uuid.UUID) bool {
	for _, w := range existing {
		if w.ID == exclude {
			continue
		}
		if !IsActive(w.Status) {
			continue
		}
		if Overlaps(w.StartMin, w.EndMin, startMin, endMin) {
			return true
		}
	}
	return false
}

// SlotWindow is a teacher's recurring weekly availability window.
type SlotWindow struct {
	ID       uuid.UUID
	StartMin int
	EndMin   int
}

// SlotOverlaps reports whether a proposed availability window overlaps any
// existing slot on the same day of week. Slots recur weekly, so only the
// time of day matters.
func SlotOverlaps(existing []SlotWindow, startMin, endMin int) bool {
	for _, s := range existing {
		if Overlaps(s.StartMin, s.EndMin, startMin, endMin) {
			return true
		}
	}
	return false
}
