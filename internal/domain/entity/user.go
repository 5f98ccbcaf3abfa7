// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a single account.
// PasswordHash is the stored credential encoding; it never leaves the
// service layer in any response payload.
type User struct {
	ID           int64     // Primary key assigned by the database.
	Username     string    // Unique login name, 3-50 chars of [A-Za-z0-9_-].
	Email        string    // Unique contact address, also accepted as a login identifier.
	PasswordHash string    // Encoded credential, see entity.Credential for the variants.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// PublicUser is the client-facing projection of a User.
// It deliberately has no field for the password hash.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
