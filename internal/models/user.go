package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique, stored lowercase
	Email        string    `db:"email"`         // Unique, stored lowercase
	PasswordHash string    `db:"password_hash"` // bcrypt digest, never the plaintext
	FirstName    *string   `db:"first_name"`    // Optional display name
	LastName     *string   `db:"last_name"`     // Optional display name
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// User is the API view of an account. It never carries the password hash.
// swagger:model User
type User struct {
	UserID    uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
}

// NewUser builds the API view from a database record.
func NewUser(u *UserDB) *User {
	if u == nil {
		return nil
	}
	return &User{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
