package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID              uuid.UUID  `db:"user_id"`                // Primary key
	Username            string     `db:"username"`               // Unique username
	Email               string     `db:"email"`                  // Unique normalized email
	PasswordHash        string     `db:"password_hash"`          // Bcrypt hash
	ResetToken          *string    `db:"reset_token"`            // Outstanding password-reset token, if any
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at"` // Reset token expiry
	CreatedAt           time.Time  `db:"created_at"`             // Creation timestamp
	UpdatedAt           time.Time  `db:"updated_at"`             // Last update timestamp
}

// UserPublic is the projection of a user returned by the API.
// It never carries the password hash or reset-token fields.
type UserPublic struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Public returns the API projection of the user.
func (u *UserDB) Public() *UserPublic {
	return &UserPublic{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
