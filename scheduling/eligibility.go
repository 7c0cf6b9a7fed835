package scheduling

import "github.com/google/uuid"

// EligibleTeachers computes which teachers may be assigned to a
// center-service booking for a given interval: the intersection of the
// center's active roster, the teachers assigned to the service, and those
// whose existing bookings leave the interval free. Order follows the
// roster. An empty result means the booking request must be rejected.
func EligibleTeachers(
	employed []uuid.UUID,
	serviceAssigned []uuid.UUID,
	bookingsByTeacher map[uuid.UUID][]BookingWindow,
	startMin, endMin int,
) []uuid.UUID {
	assigned := make(map[uuid.UUID]bool, len(serviceAssigned))
	for _, id := range serviceAssigned {
		assigned[id] = true
	}

	eligible := make([]uuid.UUID, 0, len(employed))
	for _, id := range employed {
		if !assigned[id] {
			continue
		}
		if HasConflict(bookingsByTeacher[id], startMin, endMin, uuid.Nil) {
			continue
		}
		eligible = append(eligible, id)
	}
	return eligible
}
