package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/response"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"

	"github.com/labstack/echo/v4"
)

// updateProfileRequest is the partial account update payload. Absent fields
// stay untouched.
type updateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=128"`
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated user's account data.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, user.Public())
}

// UpdateProfile applies a partial update to the authenticated account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), user.ID, &usecase.UpdateProfileInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated.Public())
}

// DeleteAccount removes the authenticated account and its wishes.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
