// Package binder provides the strict JSON request binder.
package binder

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	domainerrors "wishlist/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// StrictBinder decodes JSON request bodies with unknown fields rejected.
// A payload carrying a field the schema does not declare fails the whole
// request instead of being silently dropped.
type StrictBinder struct {
	fallback echo.DefaultBinder
}

// New creates the binder used by the HTTP server.
func New() echo.Binder {
	return &StrictBinder{}
}

// Bind decodes the request into i. JSON bodies go through a strict decoder;
// everything else (path params, query params) uses Echo's default binding.
func (b *StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()

	if req.ContentLength != 0 && isJSON(req) {
		decoder := json.NewDecoder(req.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(i); err != nil {
			return bindError(err)
		}
		// Trailing garbage after the document is rejected too.
		if decoder.More() {
			return domainerrors.ErrValidationFailed.WithMessage("Request body must contain a single JSON document")
		}

		return b.fallback.BindPathParams(c, i)
	}

	if err := b.fallback.Bind(i, c); err != nil {
		return bindError(err)
	}

	return nil
}

func isJSON(req *http.Request) bool {
	contentType := req.Header.Get(echo.HeaderContentType)

	return strings.HasPrefix(contentType, echo.MIMEApplicationJSON)
}

func bindError(err error) error {
	var unknownField string
	if msg := err.Error(); strings.Contains(msg, "unknown field") {
		unknownField = msg[strings.Index(msg, "unknown field"):]
	}

	if unknownField != "" {
		return domainerrors.ErrValidationFailed.
			WithMessage("Request contains unexpected fields").
			WithDetails(unknownField)
	}

	switch err.(type) {
	case *json.UnmarshalTypeError:
		return domainerrors.ErrValidationFailed.WithMessage("Request field has the wrong type")
	case *json.SyntaxError:
		return domainerrors.ErrValidationFailed.WithMessage("Request body is not valid JSON")
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return domainerrors.ErrValidationFailed.WithMessage("Request body is not valid JSON")
	}

	return domainerrors.ErrValidationFailed.WithMessage("Invalid request payload")
}
