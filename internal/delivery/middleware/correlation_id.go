package middleware

import (
	"log/slog"

	deliverycontext "wishlist/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationIDMiddleware generates a unique correlation ID for each request
// and creates a request-scoped logger carrying it.
type CorrelationIDMiddleware struct {
	logger *slog.Logger
}

// NewCorrelationIDMiddleware creates a new correlation ID middleware
func NewCorrelationIDMiddleware(logger *slog.Logger) *CorrelationIDMiddleware {
	return &CorrelationIDMiddleware{
		logger: logger,
	}
}

// Process generates the correlation ID and creates a logger scoped to it.
// Client-supplied correlation headers are deliberately ignored: the ID ties
// response bodies to server logs, and honoring inbound values would let a
// client plant arbitrary strings in the log trail.
func (m *CorrelationIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		correlationID := uuid.New().String()

		// Store correlation ID in echo.Context for response use
		deliverycontext.SetCorrelationID(c, correlationID)

		// Add correlation ID to response headers
		c.Response().Header().Set(deliverycontext.HeaderXCorrelationID, correlationID)

		// Create a child logger with the correlation ID
		reqLogger := m.logger.With(slog.String("correlation_id", correlationID))

		// Store correlation ID and logger in context.Context for service layer use
		ctx := c.Request().Context()
		ctx = deliverycontext.WithCorrelationID(ctx, correlationID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
