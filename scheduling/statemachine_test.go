package scheduling

import (
	"testing"

	"github.com/liphant/liphant-api/apperrors"
)

var allStatuses = []string{
	StatusPending,
	StatusAwaitingAssignment,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

var allEvents = []string{
	EventConfirm,
	EventDecline,
	EventAssign,
	EventComplete,
	EventCancel,
}

// validTransitions is the full lifecycle table. Every (status, event) pair
// absent from it must fail with an invalid-transition error.
var validTransitions = map[string]map[string]string{
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

func TestTransitionFullGrid(t *testing.T) {
	for _, status := range allStatuses {
		for _, event := range allEvents {
			next, err := Transition(status, event)
			want, ok := validTransitions[status][event]
			if ok {
				if err != nil {
					t.Errorf("Transition(%s, %s): unexpected error %v", status, event, err)
					continue
				}
				if next != want {
					t.Errorf("Transition(%s, %s) = %s, want %s", status, event, next, want)
				}
				continue
			}
			if err == nil {
				t.Errorf("Transition(%s, %s) = %s, want invalid-transition error", status, event, next)
				continue
			}
			if err.Code != apperrors.CodeInvalidTransition {
				t.Errorf("Transition(%s, %s) error code = %s, want %s",
					status, event, err.Code, apperrors.CodeInvalidTransition)
			}
		}
	}
}

func TestTerminalStatusesAcceptNoEvents(t *testing.T) {
	for _, status := range []string{StatusCompleted, StatusCancelled} {
		if !IsTerminal(status) {
			t.Errorf("IsTerminal(%s) = false", status)
		}
		for _, event := range allEvents {
			if _, err := Transition(status, event); err == nil {
				t.Errorf("Transition(%s, %s) succeeded, terminal status must reject all events", status, event)
			}
		}
	}
}

func TestIsActive(t *testing.T) {
	active := map[string]bool{
		StatusPending:            true,
		StatusAwaitingAssignment: true,
		StatusConfirmed:          true,
		StatusCompleted:          false,
		StatusCancelled:          false,
	}
	for status, want := range active {
		if got := IsActive(status); got != want {
			t.Errorf("IsActive(%s) = %v, want %v", status, got, want)
		}
	}
	if IsActive("no_such_status") {
		t.Error("IsActive accepted an unknown status")
	}
}
