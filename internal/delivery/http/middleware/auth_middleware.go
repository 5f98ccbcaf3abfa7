package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "wishlist/internal/delivery/context"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"
	"wishlist/internal/util"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
	ContextKeyToken  = "token"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase, logger: logger}
}

// Authenticate validates the bearer token and resolves it to a live account.
// A well-signed token naming a deleted user fails here, identically to a
// forged one.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := ExtractBearerToken(c)
		if err != nil {
			return err
		}

		user, err := m.authUsecase.CurrentUser(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Token rejected",
				slog.String("token", util.MaskToken(token)),
				slog.String("path", c.Request().URL.Path),
			)

			return err
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyToken, token)

		return next(c)
	}
}

// ExtractBearerToken pulls the token out of the Authorization header.
// A missing or non-Bearer header fails with 403 before any token is looked
// at; 401 is reserved for tokens that were presented and rejected.
func ExtractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrForbidden.WithMessage("Not authenticated")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrForbidden.WithMessage("Invalid authentication credentials")
	}

	return token, nil
}

// CurrentUser returns the authenticated user set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}
