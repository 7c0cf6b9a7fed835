package models

import (
	"time"

	"github.com/google/uuid"
)

type Center struct {
	UserID        uuid.UUID `gorm:"primary_key" json:"user_id"`
	NameEn        string    `gorm:"size:255;not null" json:"name_en"`
	NameAr        string    `gorm:"size:255;not null" json:"name_ar"`
	DescriptionEn *string   `gorm:"type:text" json:"description_en"`
	DescriptionAr *string   `gorm:"type:text" json:"description_ar"`
	Address       *string   `gorm:"size:255" json:"address"`
	City          *string   `gorm:"size:100" json:"city"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	User     User      `gorm:"foreignkey:UserID" json:"user"`
	Services []Service `gorm:"foreignkey:CenterID" json:"services,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CenterTeacher is a teacher's employment record at a center. A teacher may
// only be assigned center bookings while the record is active.
type CenterTeacher struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CenterID  uuid.UUID `gorm:"not null;index:idx_center_teacher,unique" json:"center_id"`
	TeacherID uuid.UUID `gorm:"not null;index:idx_center_teacher,unique" json:"teacher_id"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	Center  Center  `gorm:"foreignkey:CenterID" json:"-"`
	Teacher Teacher `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"joined_at"`
	UpdatedAt time.Time `json:"-"`
}
