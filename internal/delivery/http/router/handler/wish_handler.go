package handler

import (
	"log/slog"
	"net/http"
	"time"

	httpmiddleware "wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/response"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createWishRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=1000"`
	Price       *decimal.Decimal `json:"price"`
}

type updateWishRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
}

type listWishesRequest struct {
	Skip   int    `query:"skip"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

type wishResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type wishPageResponse struct {
	Items []wishResponse `json:"items"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

const defaultPageLimit = 10

// WishHandler holds dependencies for wish handlers.
type WishHandler struct {
	uc     usecase.WishUsecase
	logger *slog.Logger
}

// NewWishHandler is the constructor for WishHandler, injected by Fx.
func NewWishHandler(uc usecase.WishUsecase, logger *slog.Logger) *WishHandler {
	return &WishHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles wish creation for the authenticated user.
func (h *WishHandler) Create(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input createWishRequest
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	wish, err := h.uc.CreateWish(c.Request().Context(), user.ID, &usecase.CreateWishInput{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toWishResponse(wish))
}

// List returns a page of the user's wishes, optionally title-filtered.
func (h *WishHandler) List(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	input := listWishesRequest{Limit: defaultPageLimit}
	if err := c.Bind(&input); err != nil {
		return err
	}

	page, err := h.uc.ListWishes(c.Request().Context(), user.ID, &usecase.ListWishesInput{
		Skip:   input.Skip,
		Limit:  input.Limit,
		Search: input.Search,
	})
	if err != nil {
		return err
	}

	items := make([]wishResponse, 0, len(page.Items))
	for _, wish := range page.Items {
		items = append(items, toWishResponse(wish))
	}

	return response.Success(c, http.StatusOK, wishPageResponse{
		Items: items,
		Total: page.Total,
		Skip:  page.Skip,
		Limit: page.Limit,
	})
}

// Get returns a single wish owned by the authenticated user.
func (h *WishHandler) Get(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	wishID, err := wishIDParam(c)
	if err != nil {
		return err
	}

	wish, err := h.uc.GetWish(c.Request().Context(), user.ID, wishID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toWishResponse(wish))
}

// Update applies a partial update to a wish owned by the authenticated user.
func (h *WishHandler) Update(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	wishID, err := wishIDParam(c)
	if err != nil {
		return err
	}

	var input updateWishRequest
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	wish, err := h.uc.UpdateWish(c.Request().Context(), user.ID, wishID, &usecase.UpdateWishInput{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toWishResponse(wish))
}

// Delete removes a wish owned by the authenticated user.
func (h *WishHandler) Delete(c echo.Context) error {
	user, ok := httpmiddleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	wishID, err := wishIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteWish(c.Request().Context(), user.ID, wishID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func wishIDParam(c echo.Context) (int64, error) {
	var params struct {
		ID int64 `param:"id"`
	}
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &params); err != nil || params.ID <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithMessage("Wish id must be a positive integer")
	}

	return params.ID, nil
}

func toWishResponse(wish *entity.Wish) wishResponse {
	return wishResponse{
		ID:          wish.ID,
		Title:       wish.Title,
		Description: wish.Description,
		Price:       wish.Price,
		CreatedAt:   wish.CreatedAt,
		UpdatedAt:   wish.UpdatedAt,
	}
}
