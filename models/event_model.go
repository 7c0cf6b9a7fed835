package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedByID   uuid.UUID `gorm:"not null" json:"created_by_id"`
	CenterID      *uuid.UUID `json:"center_id"`
	TitleEn       string    `gorm:"size:255;not null" json:"title_en"`
	TitleAr       string    `gorm:"size:255;not null" json:"title_ar"`
	DescriptionEn *string   `gorm:"type:text" json:"description_en"`
	DescriptionAr *string   `gorm:"type:text" json:"description_ar"`
	Location      *string   `gorm:"size:255" json:"location"`
	StartsAt      time.Time `gorm:"not null" json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at"`
	Capacity      int       `gorm:"default:0" json:"capacity"`

	CreatedBy     User                `gorm:"foreignkey:CreatedByID" json:"-"`
	Registrations []EventRegistration `gorm:"foreignkey:EventID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type EventRegistration struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID uuid.UUID `gorm:"not null;index:idx_event_user,unique" json:"event_id"`
	UserID  uuid.UUID `gorm:"not null;index:idx_event_user,unique" json:"user_id"`

	Event Event `gorm:"foreignkey:EventID" json:"-"`
	User  User  `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"registered_at"`
}
