package domain

import (
	"time"

	"github.com/google/uuid"
)

// Like marks a message as liked by a user. The (user, message) pair is
// unique at the store; liking twice is a toggle, never a duplicate row.
type Like struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	MessageID uuid.UUID `json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}
