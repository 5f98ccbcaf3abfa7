// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wishlist/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
// Identifier matches either username or email.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// TokenOutput returns the issued access token after a successful login
// or refresh. TokenType is always "bearer".
type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and issues a bearer token. Unknown
	// identifiers and wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Refresh exchanges a still-valid access token for a fresh one.
	Refresh(ctx context.Context, token string) (*TokenOutput, error)

	// CurrentUser resolves a bearer token to the user it names. Tokens
	// whose user no longer exists are rejected as invalid.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
