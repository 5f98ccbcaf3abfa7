package impl

import (
	"context"
	"log/slog"

	deliverycontext "wishlist/internal/delivery/context"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/usecase"
	"wishlist/internal/validate"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// wishService implements the WishUsecase interface. All validation happens
// here, before anything touches the repository; rejected values never reach
// the database.
type wishService struct {
	wishRepo repository.WishRepository
	logger   *slog.Logger
}

// WishServiceParams holds dependencies for wishService, injected by Fx.
type WishServiceParams struct {
	fx.In

	WishRepo repository.WishRepository
	Logger   *slog.Logger
}

// NewWishService is the constructor for wishService.
func NewWishService(params WishServiceParams) usecase.WishUsecase {
	return &wishService{
		wishRepo: params.WishRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWish validates and persists a new wish for the user.
func (srv *wishService) CreateWish(ctx context.Context, userID int64, input *usecase.CreateWishInput) (*entity.Wish, error) {
	title, description, err := screenWishText(input.Title, input.Description)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}

	wish := &entity.Wish{
		UserID:      userID,
		Title:       title,
		Description: description,
		Price:       input.Price,
	}
	if err := srv.wishRepo.Create(ctx, wish); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Wish created", slog.Int64("userID", userID), slog.Int64("wishID", wish.ID))

	return wish, nil
}

// GetWish returns a single wish owned by the user.
func (srv *wishService) GetWish(ctx context.Context, userID, wishID int64) (*entity.Wish, error) {
	wish, err := srv.wishRepo.FindByUserAndID(ctx, userID, wishID)
	if err != nil {
		if errors.Is(err, repository.ErrWishNotFound) {
			return nil, domainerrors.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to load wish")
	}

	return wish, nil
}

// ListWishes returns a page of the user's wishes. A non-empty search term is
// markup-screened and LIKE-escaped before it reaches the repository, so
// user-typed wildcards match literally.
func (srv *wishService) ListWishes(ctx context.Context, userID int64, input *usecase.ListWishesInput) (*usecase.WishPage, error) {
	if err := validate.Pagination(input.Skip, input.Limit); err != nil {
		return nil, err
	}

	if input.Search != "" {
		if err := validate.SearchTerm(input.Search); err != nil {
			return nil, err
		}
		term, err := validate.Markup(input.Search)
		if err != nil {
			return nil, err
		}

		items, total, err := srv.wishRepo.SearchByTitle(ctx, userID, validate.EscapeLikePattern(term), input.Skip, input.Limit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search wishes")
		}

		return &usecase.WishPage{Items: items, Total: total, Skip: input.Skip, Limit: input.Limit}, nil
	}

	items, err := srv.wishRepo.ListByUser(ctx, userID, input.Skip, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishes")
	}
	total, err := srv.wishRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count wishes")
	}

	return &usecase.WishPage{Items: items, Total: total, Skip: input.Skip, Limit: input.Limit}, nil
}

// UpdateWish applies a partial update to a wish owned by the user.
func (srv *wishService) UpdateWish(ctx context.Context, userID, wishID int64, input *usecase.UpdateWishInput) (*entity.Wish, error) {
	wish, err := srv.GetWish(ctx, userID, wishID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validate.Markup(*input.Title)
		if err != nil {
			return nil, err
		}
		if err := validate.Title(title); err != nil {
			return nil, err
		}
		wish.Title = title
	}
	if input.Description != nil {
		description, err := validate.Markup(*input.Description)
		if err != nil {
			return nil, err
		}
		if err := validate.Description(description); err != nil {
			return nil, err
		}
		wish.Description = description
	}
	if input.Price != nil {
		if err := validatePrice(input.Price); err != nil {
			return nil, err
		}
		wish.Price = input.Price
	}

	if err := srv.wishRepo.Update(ctx, wish); err != nil {
		if errors.Is(err, repository.ErrWishNotFound) {
			return nil, domainerrors.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to update wish")
	}

	srv.log(ctx).Debug("Wish updated", slog.Int64("userID", userID), slog.Int64("wishID", wishID))

	return wish, nil
}

// DeleteWish removes a wish owned by the user.
func (srv *wishService) DeleteWish(ctx context.Context, userID, wishID int64) error {
	if err := srv.wishRepo.DeleteByUserAndID(ctx, userID, wishID); err != nil {
		if errors.Is(err, repository.ErrWishNotFound) {
			return domainerrors.ErrWishNotFound
		}

		return errors.Wrap(err, "failed to delete wish")
	}

	srv.log(ctx).Debug("Wish deleted", slog.Int64("userID", userID), slog.Int64("wishID", wishID))

	return nil
}

func screenWishText(title, description string) (string, string, error) {
	cleanTitle, err := validate.Markup(title)
	if err != nil {
		return "", "", err
	}
	if err := validate.Title(cleanTitle); err != nil {
		return "", "", err
	}

	cleanDescription, err := validate.Markup(description)
	if err != nil {
		return "", "", err
	}
	if err := validate.Description(cleanDescription); err != nil {
		return "", "", err
	}

	return cleanTitle, cleanDescription, nil
}

func validatePrice(price *decimal.Decimal) error {
	if price == nil {
		return nil
	}

	return validate.Money(*price)
}
