package models

import (
	"time"

	"github.com/google/uuid"
)

type Specialization struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NameEn string    `gorm:"size:100;not null;unique" json:"name_en"`
	NameAr string    `gorm:"size:100;not null" json:"name_ar"`

	CreatedAt time.Time `json:"-"`
}
