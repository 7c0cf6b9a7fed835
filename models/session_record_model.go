package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionRecord is the teacher's write-up of a completed session. One
// record per booking.
type SessionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;unique" json:"booking_id"`
	TeacherID uuid.UUID `gorm:"not null" json:"teacher_id"`
	ChildID   uuid.UUID `gorm:"not null" json:"child_id"`

	Summary       string  `gorm:"type:text;not null" json:"summary"`
	ProgressNotes *string `gorm:"type:text" json:"progress_notes"`
	Goals         *string `gorm:"type:text" json:"goals"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`
	Child   Child   `gorm:"foreignkey:ChildID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgressReport is a generated PDF summarizing a child's sessions,
// rendered server-side and stored in object storage.
type ProgressReport struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChildID   uuid.UUID `gorm:"not null" json:"child_id"`
	ParentID  uuid.UUID `gorm:"not null" json:"-"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ReportURL string    `gorm:"size:255;not null" json:"report_url"`

	Child Child `gorm:"foreignkey:ChildID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
