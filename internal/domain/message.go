package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLen mirrors the length bound on the messages.text column.
const MaxMessageLen = 140

type Message struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields
	AuthorUsername string `json:"author_username,omitempty"`
}
