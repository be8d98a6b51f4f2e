package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an application account. A user signs in with a password,
// a Google identity, or both once linked.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"` // nil for Google-only accounts
	GoogleID     *string   `json:"googleId,omitempty"`
	PhotoURL     *string   `json:"photoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasPassword reports whether the account can use password login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
