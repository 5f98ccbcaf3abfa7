package impl

import (
	"context"
	"log/slog"

	deliverycontext "wishlist/internal/delivery/context"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/domain/service"
	"wishlist/internal/usecase"
	"wishlist/internal/util"
	"wishlist/internal/validate"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Profile returns the user's account data.
func (srv *userService) Profile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update. Username and email changes are
// checked for uniqueness; password changes are complexity-checked and
// re-hashed. The read-check-write runs in one transaction so two concurrent
// updates cannot both claim the same value.
func (srv *userService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Username != nil {
		if err := validate.Username(*input.Username); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := validate.Email(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Password != nil {
		if err := validate.PasswordComplexity(*input.Password); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		if input.Username != nil && *input.Username != user.Username {
			taken, err := userRepo.ExistsByUsername(ctx, *input.Username)
			if err != nil {
				return errors.Wrap(err, "failed to check username uniqueness")
			}
			if taken {
				return domainerrors.ErrUsernameConflict
			}
			user.Username = *input.Username
		}

		if input.Email != nil && *input.Email != user.Email {
			taken, err := userRepo.ExistsByEmail(ctx, *input.Email)
			if err != nil {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
			if taken {
				return domainerrors.ErrEmailConflict
			}
			user.Email = *input.Email
		}

		if input.Password != nil {
			hash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			user.PasswordHash = hash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed",
			slog.Int64("userID", userID),
			slog.String("error", util.MaskPII(err.Error())),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("userID", userID))

	return updated, nil
}

// DeleteAccount removes the user; their wishes go with them via the
// schema's cascade.
func (srv *userService) DeleteAccount(ctx context.Context, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("userID", userID))

	return nil
}
