package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"wishlist/internal/domain/entity"
)

// CreateWishInput defines the data required to create a wish.
type CreateWishInput struct {
	Title       string
	Description string
	Price       *decimal.Decimal
}

// UpdateWishInput defines the data for a partial wish update.
// Nil fields are left unchanged.
type UpdateWishInput struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
}

// ListWishesInput defines pagination and optional title search.
type ListWishesInput struct {
	Skip   int
	Limit  int
	Search string
}

// WishPage is one page of a user's wishes with the total match count.
type WishPage struct {
	Items []*entity.Wish
	Total int64
	Skip  int
	Limit int
}

// WishUsecase defines the interface for wish business operations.
// Every operation is scoped to the calling user.
type WishUsecase interface {
	// CreateWish validates and persists a new wish for the user.
	CreateWish(ctx context.Context, userID int64, input *CreateWishInput) (*entity.Wish, error)

	// GetWish returns a single wish owned by the user.
	GetWish(ctx context.Context, userID, wishID int64) (*entity.Wish, error)

	// ListWishes returns a page of the user's wishes, optionally filtered
	// by a title search term.
	ListWishes(ctx context.Context, userID int64, input *ListWishesInput) (*WishPage, error)

	// UpdateWish applies a partial update to a wish owned by the user.
	UpdateWish(ctx context.Context, userID, wishID int64, input *UpdateWishInput) (*entity.Wish, error)

	// DeleteWish removes a wish owned by the user.
	DeleteWish(ctx context.Context, userID, wishID int64) error
}
