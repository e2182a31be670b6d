package domain

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: the follower follows the followed user.
// The (follower, followed) pair is the primary key, so a duplicate edge
// is a uniqueness violation at the store.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FollowedID uuid.UUID `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
