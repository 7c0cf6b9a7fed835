package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a recurring weekly window a teacher declares
// bookable. DayOfWeek is 0 (Sunday) through 6; times are minutes from
// midnight. Slots for the same teacher and day must not overlap.
type AvailabilitySlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID uuid.UUID `gorm:"not null;index" json:"-"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"`
	StartMin  int       `gorm:"not null" json:"start_min"`
	EndMin    int       `gorm:"not null" json:"end_min"`
	Recurring bool      `gorm:"default:true" json:"recurring"`

	Teacher User `gorm:"foreignkey:TeacherID" json:"-"`

	CreatedAt time.Time `json:"-"`
}
