// Package scheduling is the booking decision core: clock-time parsing,
// interval overlap detection, the booking state machine, and teacher
// assignment eligibility. It holds no database or framework state so the
// whole package is testable in isolation; handlers feed it the persisted
// facts and act on its answers inside a transaction.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liphant/liphant-api/apperrors"
)

const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" clock time into minutes from midnight.
// Comparisons are always done on the normalized integer form, never on the
// raw string, so non-zero-padded input ("9:30") orders correctly.
func ParseClock(s string) (int, *apperrors.AppError) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid clock time %q, expected HH:MM", s))
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid hour in clock time %q", s))
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid minute in clock time %q", s))
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight back to zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateInterval rejects malformed half-open intervals. Start must be
// strictly before end and both must fall within a single day.
func ValidateInterval(startMin, endMin int) *apperrors.AppError {
	if startMin < 0 || endMin > minutesPerDay {
		return apperrors.Validation("interval must fall within a single day")
	}
	if startMin >= endMin {
		return apperrors.Validation("start time must be before end time")
	}
	return nil
}
