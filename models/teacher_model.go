package models

import (
	"time"

	"github.com/google/uuid"
)

type Teacher struct {
	UserID     uuid.UUID `gorm:"primary_key" json:"user_id"`
	HeadlineEn *string   `gorm:"size:255" json:"headline_en"`
	HeadlineAr *string   `gorm:"size:255" json:"headline_ar"`
	BioEn      *string   `gorm:"type:text" json:"bio_en"`
	BioAr      *string   `gorm:"type:text" json:"bio_ar"`
	HourlyRate float64   `gorm:"type:numeric(10,2);not null;default:0.00" json:"hourly_rate"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	AvgRating  float32   `gorm:"default:0" json:"avg_rating"`

	YearsOfExperience int               `gorm:"default:0" json:"years_of_experience"`
	Specializations   []*Specialization `gorm:"many2many:teacher_specializations;" json:"specializations"`
	User              User              `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
