package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Profile image fallbacks applied at signup when the caller supplies none.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// MaxUsernameLen mirrors the length bound on the users.username column.
const MaxUsernameLen = 30

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            *string   `json:"bio,omitempty"`
	Location       *string   `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// String is a diagnostic representation, not a security boundary.
func (u *User) String() string {
	return fmt.Sprintf("<User #%s: %s, %s>", u.ID, u.Username, u.Email)
}
