package usecase

import (
	"context"

	"wishlist/internal/domain/entity"
)

// UpdateProfileInput defines the data for a partial profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Password *string
}

// UserUsecase defines the interface for account business operations.
type UserUsecase interface {
	// Profile returns the user's account data.
	Profile(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateProfile applies a partial update to the user's account.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the user and all of their wishes.
	DeleteAccount(ctx context.Context, userID int64) error
}
