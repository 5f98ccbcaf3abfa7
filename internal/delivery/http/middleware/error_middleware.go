package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"wishlist/config"
	deliverycontext "wishlist/internal/delivery/context"
	"wishlist/internal/delivery/http/response"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware converts every error escaping a handler into an RFC 7807
// problem document. It is the single place responses pick up their
// correlation ID, so no error path can leak a stack trace or raw SQL.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeAppError(c, appErr)

		return
	}

	// Check if it's Echo's HTTPError (unknown routes, method mismatches,
	// malformed bodies surfaced by the binder)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		if writeErr := response.WriteProblem(c, httpErr.Code, kindForStatus(httpErr.Code), message, ""); writeErr != nil {
			m.logWriteFailure(c, writeErr)
		}

		return
	}

	// Anything else is an internal error. Log the full cause, masked, and
	// return a generic document; raw details only appear in debug builds.
	m.log(c).Error("Unhandled error",
		slog.String("error", util.MaskPII(err.Error())),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	detail := "An internal error occurred"
	if m.debug {
		detail = util.MaskPII(err.Error())
	}

	if writeErr := response.WriteProblem(c, http.StatusInternalServerError, domainerrors.KindInternal, "Internal server error", detail); writeErr != nil {
		m.logWriteFailure(c, writeErr)
	}
}

func (m *ErrorMiddleware) writeAppError(c echo.Context, appErr domainerrors.AppError) {
	detail := util.MaskPII(appErr.Details())

	// Server-side failure details never leave the process outside debug builds.
	if appErr.HTTPCode() >= http.StatusInternalServerError && !m.debug {
		detail = ""
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		m.log(c).Error("Request failed",
			slog.String("kind", appErr.Kind()),
			slog.String("error", util.MaskPII(appErr.Error())),
			slog.String("path", c.Request().URL.Path),
		)
	}

	if writeErr := response.WriteProblem(c, appErr.HTTPCode(), appErr.Kind(), appErr.Message(), detail); writeErr != nil {
		m.logWriteFailure(c, writeErr)
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func (m *ErrorMiddleware) logWriteFailure(c echo.Context, err error) {
	m.logger.Error("Failed to write error response",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
	)
}

// kindForStatus maps transport-level statuses to stable error codes for
// errors that never pass through the domain layer.
func kindForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.KindNotFound
	case http.StatusUnauthorized:
		return domainerrors.KindUnauthorized
	case http.StatusForbidden:
		return domainerrors.KindForbidden
	case http.StatusUnprocessableEntity:
		return domainerrors.KindValidation
	case http.StatusTooManyRequests:
		return domainerrors.KindRateLimit
	default:
		if status >= http.StatusInternalServerError {
			return domainerrors.KindInternal
		}

		return fmt.Sprintf("http_%d", status)
	}
}
