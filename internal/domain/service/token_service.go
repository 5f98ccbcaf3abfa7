package service

import (
	"time"
)

// Claims is the verified content of an access token.
type Claims struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for creating and verifying signed,
// expiring bearer tokens. Verification is stateless: a token is valid iff
// its signature checks out and it has not expired. There is no revocation
// store, so a token stays valid until natural expiry.
type TokenService interface {
	// Issue creates a signed token for the given user with the configured TTL.
	// It returns the compact token string and its lifetime in seconds.
	Issue(userID int64, username string) (token string, expiresIn int64, err error)

	// Validate verifies signature, structure and expiry, and returns the claims.
	Validate(token string) (*Claims, error)

	// ResolveSubject verifies the token and returns the subject user ID.
	// A missing or non-numeric subject is a validation failure.
	ResolveSubject(token string) (int64, error)
}
