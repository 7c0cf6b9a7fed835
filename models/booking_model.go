package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a provider's time for one child on one date. The
// provider is either a named teacher (direct booking) or a center service
// that an admin later assigns a teacher to; in the second case TeacherID
// stays nil until assignment. Cancellation is a status change, a booking
// row is never deleted.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Reference string    `gorm:"size:10;not null;unique"`
	ParentID  uuid.UUID `gorm:"not null"`
	ChildID   uuid.UUID `gorm:"not null"`

	TeacherID *uuid.UUID `gorm:"index:idx_booking_teacher_date"`
	CenterID  *uuid.UUID
	ServiceID *uuid.UUID

	Date     time.Time `gorm:"type:date;not null;index:idx_booking_teacher_date"`
	StartMin int       `gorm:"not null"`
	EndMin   int       `gorm:"not null"`

	Status string  `gorm:"size:25;not null;default:'pending'"`
	Amount float64 `gorm:"type:numeric(10,2);not null"`
	Notes  *string `gorm:"type:text"`

	Parent  User     `gorm:"foreignkey:ParentID"`
	Child   Child    `gorm:"foreignkey:ChildID"`
	Teacher *User    `gorm:"foreignkey:TeacherID"`
	Center  *Center  `gorm:"foreignkey:CenterID"`
	Service *Service `gorm:"foreignkey:ServiceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
