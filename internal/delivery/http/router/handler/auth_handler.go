// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/response"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/service"
	"wishlist/internal/errors"
	"wishlist/internal/usecase"

	"github.com/labstack/echo/v4"
)

// loginRequest is the login payload. The username field also accepts an
// email address.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// refreshRequest carries the token to exchange. The access token doubles as
// its own refresh credential; there is no separate refresh-token type.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// logoutRequest carries the token the client is discarding.
type logoutRequest struct {
	Token string `json:"token" validate:"required"`
}

// tokenResponse is the issued-token payload for login and refresh.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	limiter service.LoginLimiter
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, limiter service.LoginLimiter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		limiter: limiter,
		logger:  logger,
	}
}

// Login handles the login request and reports the outcome back to the
// limiter: failures count toward the lockout, a success clears the slate.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: input.Username,
		Password:   input.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			h.limiter.RecordFailure(c.RealIP())
		}

		return err
	}

	h.limiter.RecordSuccess(c.RealIP())

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	})
}

// Refresh exchanges a still-valid token, carried in the body, for a fresh one.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	})
}

// Logout acknowledges the logout. Tokens are stateless, so there is nothing
// to revoke server-side; the client discards its copy. The route still
// requires a live bearer token so it cannot be used to probe the API shape
// anonymously.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := httpmiddleware.ExtractBearerToken(c)
	if err != nil {
		return err
	}
	if _, err := h.uc.CurrentUser(c.Request().Context(), token); err != nil {
		return err
	}

	var input logoutRequest
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, user.Public())
}
