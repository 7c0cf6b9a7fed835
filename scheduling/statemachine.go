package scheduling

import "github.com/liphant/liphant-api/apperrors"

// Booking statuses. A booking is never deleted; cancellation is a status.
const (
	StatusPending            = "pending"
	StatusAwaitingAssignment = "awaiting_assignment"
	StatusConfirmed          = "confirmed"
	StatusCompleted          = "completed"
	StatusCancelled          = "cancelled"
)

// Lifecycle events.
const (
	EventConfirm  = "confirm"
	EventDecline  = "decline"
	EventAssign   = "assign"
	EventComplete = "complete"
	EventCancel   = "cancel"
)

var transitions = map[string]map[string]string{
	StatusPending: {
		EventConfirm: StatusConfirmed,
		EventDecline: StatusCancelled,
		EventCancel:  StatusCancelled,
	},
	StatusAwaitingAssignment: {
		EventAssign: StatusConfirmed,
		EventCancel: StatusCancelled,
	},
	StatusConfirmed: {
		EventComplete: StatusCompleted,
		EventCancel:   StatusCancelled,
	},
}

// Transition returns the status a booking moves to when event fires from
// the given status. Any pair not in the table is an invalid transition;
// terminal statuses (completed, cancelled) accept no events.
func Transition(from, event string) (string, *apperrors.AppError) {
	if next, ok := transitions[from][event]; ok {
		return next, nil
	}
	return "", apperrors.InvalidTransition(from, event)
}

// IsActive reports whether a booking in this status occupies its time slot
// for conflict purposes.
func IsActive(status string) bool {
	switch status {
	case StatusPending, StatusAwaitingAssignment, StatusConfirmed:
		return true
	}
	return false
}

// IsTerminal reports whether no further lifecycle event applies.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
