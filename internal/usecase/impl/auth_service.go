// Package impl contains the implementation of the application's business logic.
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "bearer"

// dummyHash keeps the password check on the unknown-identifier path so a
// missing account costs the same as a wrong password.
const dummyHash = "$argon2id$v=19$m=262144,t=3,p=1$AAAAAAAAAAAAAAAAAAAAAA$al9jZWk3TTlEa1hLQ2ZCcmhCNWlvVWhzZUJ3alRXdTA"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the identifier/password pair and issues a bearer token.
// An unknown identifier and a wrong password produce the identical error so
// responses never reveal whether an account exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	masked := util.MaskPII(input.Identifier)
	srv.log(ctx).Debug("Starting login", slog.String("identifier", masked))

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash check anyway, then fail exactly like a bad password.
			srv.hasher.Check(input.Password, dummyHash)
			srv.log(ctx).Warn("Login failed", slog.String("identifier", masked))

			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Login lookup failed", slog.String("identifier", masked), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", masked))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresIn, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}

// Refresh exchanges a still-valid token for a fresh one with a full TTL.
// A token whose user has since been deleted is treated as invalid.
func (srv *authService) Refresh(ctx context.Context, token string) (*usecase.TokenOutput, error) {
	user, err := srv.resolveUser(ctx, token)
	if err != nil {
		return nil, err
	}

	fresh, expiresIn, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.TokenOutput{
		AccessToken: fresh,
		TokenType:   bearerTokenType,
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}

// CurrentUser resolves a bearer token to the live account it names.
func (srv *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	return srv.resolveUser(ctx, token)
}

func (srv *authService) resolveUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The subject no longer exists; the token is as good as forged.
			srv.log(ctx).Warn("Token subject not found", slog.Int64("userID", claims.UserID))

			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}
