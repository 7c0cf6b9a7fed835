package scheduling

import (
	"testing"

	"github.com/google/uuid"
)

func TestEligibleTeachers(t *testing.T) {
	busy := uuid.New()
	free := uuid.New()
	notAssigned := uuid.New()
	notEmployed := uuid.New()

	employed := []uuid.UUID{busy, free, notAssigned}
	assigned := []uuid.UUID{busy, free, notEmployed}
	bookings := map[uuid.UUID][]BookingWindow{
		busy: {window(StatusConfirmed, 600, 660)},
		free: {window(StatusCancelled, 600, 660)},
	}

	got := EligibleTeachers(employed, assigned, bookings, 630, 690)
	if len(got) != 1 || got[0] != free {
		t.Fatalf("EligibleTeachers = %v, want [%s]", got, free)
	}
}

func TestEligibleTeachersEmptyIntersection(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	// Employed and assigned sets are disjoint.
	if got := EligibleTeachers([]uuid.UUID{a}, []uuid.UUID{b}, nil, 600, 660); len(got) != 0 {
		t.Errorf("disjoint roster/assignment gave %v, want empty", got)
	}

	// Every candidate is booked over the interval.
	bookings := map[uuid.UUID][]BookingWindow{
		a: {window(StatusPending, 600, 660)},
		b: {window(StatusConfirmed, 540, 720)},
	}
	got := EligibleTeachers([]uuid.UUID{a, b}, []uuid.UUID{a, b}, bookings, 600, 660)
	if len(got) != 0 {
		t.Errorf("fully booked roster gave %v, want empty", got)
	}

	// Back-to-back bookings do not block eligibility.
	got = EligibleTeachers([]uuid.UUID{a, b}, []uuid.UUID{a, b}, bookings, 720, 780)
	if len(got) != 2 {
		t.Errorf("adjacent interval gave %v, want both teachers", got)
	}
}

func TestEligibleTeachersPreservesRosterOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	got := EligibleTeachers(ids, ids, nil, 600, 660)
	if len(got) != len(ids) {
		t.Fatalf("got %d teachers, want %d", len(got), len(ids))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("order not preserved at %d: got %s, want %s", i, got[i], ids[i])
		}
	}
}
