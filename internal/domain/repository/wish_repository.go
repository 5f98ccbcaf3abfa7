// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"wishlist/internal/domain/entity"
)

// ErrWishNotFound is returned when a wish does not exist for the given owner.
// An existing wish owned by somebody else is reported the same way so the
// API never confirms another user's data.
var ErrWishNotFound = errors.New("wish not found")

// WishRepository defines the standard operations for wish persistence.
// Every read and write is scoped to the owning user.
type WishRepository interface {
	// Create persists a new wish.
	Create(ctx context.Context, wish *entity.Wish) error

	// FindByUserAndID retrieves a single wish owned by the given user.
	FindByUserAndID(ctx context.Context, userID, wishID int64) (*entity.Wish, error)

	// ListByUser returns a page of the user's wishes ordered by creation time.
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]*entity.Wish, error)

	// CountByUser returns the total number of wishes owned by the user.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// SearchByTitle returns a page of the user's wishes whose title contains
	// the given term. The term must already be LIKE-escaped by the caller;
	// the repository treats it as literal text.
	SearchByTitle(ctx context.Context, userID int64, term string, skip, limit int) ([]*entity.Wish, int64, error)

	// Update modifies an existing wish.
	Update(ctx context.Context, wish *entity.Wish) error

	// DeleteByUserAndID removes a wish owned by the given user.
	DeleteByUserAndID(ctx context.Context, userID, wishID int64) error
}
