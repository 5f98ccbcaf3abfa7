// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct-tag validation and maps failures to the
// validation_error kind so they render as 422 problem documents.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request payload")
	}

	failures := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.
		WithMessage("Request validation failed").
		WithDetails(strings.Join(failures, "; "))
}
