package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CenterID      uuid.UUID `gorm:"not null" json:"center_id"`
	NameEn        string    `gorm:"size:255;not null" json:"name_en"`
	NameAr        string    `gorm:"size:255;not null" json:"name_ar"`
	DescriptionEn *string   `gorm:"type:text" json:"description_en"`
	DescriptionAr *string   `gorm:"type:text" json:"description_ar"`
	Price         float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	Center   Center     `gorm:"foreignkey:CenterID" json:"-"`
	Teachers []*Teacher `gorm:"many2many:service_teachers;joinForeignKey:ServiceID;joinReferences:TeacherUserID" json:"teachers,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
