package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a private thread between two users, typically a parent
// and the teacher or center they are booking with. Membership lives in the
// conversation_participants join table, which both the message endpoints
// and the websocket hub consult before letting a user read or post.
type Conversation struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	Participants []*User   `gorm:"many2many:conversation_participants;"`
	Messages     []Message `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
