package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBookingLockKeySerializesPerTeacherAndDate(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	if bookingLockKey(teacherA, day1) != bookingLockKey(teacherA, day1) {
		t.Error("two writers for the same teacher and date must contend on one key")
	}
	if bookingLockKey(teacherA, day1) == bookingLockKey(teacherB, day1) {
		t.Error("different teachers must not share a lock key")
	}
	if bookingLockKey(teacherA, day1) == bookingLockKey(teacherA, day2) {
		t.Error("different dates must not share a lock key")
	}
}

func TestBookingLockKeyIgnoresTimeOfDay(t *testing.T) {
	teacher := uuid.New()
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 1, 18, 45, 0, 0, time.UTC)

	if bookingLockKey(teacher, midnight) != bookingLockKey(teacher, evening) {
		t.Error("lock key must depend on the calendar date only")
	}
}
