package models

import (
	"time"

	"github.com/google/uuid"
)

type ForumPost struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID uuid.UUID `gorm:"not null" json:"author_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Body     string    `gorm:"type:text;not null" json:"body"`
	Language string    `gorm:"size:2;not null;default:'en'" json:"language"`
	Status   string    `gorm:"size:20;not null;default:'visible'" json:"status"`

	Author   User           `gorm:"foreignkey:AuthorID" json:"author"`
	Comments []ForumComment `gorm:"foreignkey:PostID" json:"comments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ForumComment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PostID   uuid.UUID `gorm:"not null;index" json:"post_id"`
	AuthorID uuid.UUID `gorm:"not null" json:"author_id"`
	Body     string    `gorm:"type:text;not null" json:"body"`
	Status   string    `gorm:"size:20;not null;default:'visible'" json:"status"`

	Author User `gorm:"foreignkey:AuthorID" json:"author"`

	CreatedAt time.Time `json:"created_at"`
}
