package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyCorrelationID is the key for storing the correlation ID in context.
	KeyCorrelationID ContextKey = "correlation_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXCorrelationID is the response header carrying the correlation ID.
	// Inbound values of this header are ignored: every request gets a
	// server-generated ID so clients cannot forge log trails.
	HeaderXCorrelationID = "X-Correlation-Id"
)

// GetCorrelationID extracts the correlation ID from echo.Context.
// If not found, generates a new UUID.
func GetCorrelationID(c echo.Context) string {
	val := c.Get(string(KeyCorrelationID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetCorrelationID sets the correlation ID in echo.Context.
func SetCorrelationID(c echo.Context, correlationID string) {
	c.Set(string(KeyCorrelationID), correlationID)
}

// GetCorrelationIDFromContext extracts the correlation ID from standard context.Context.
// If not found, returns empty string.
func GetCorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCorrelationID).(string); ok {
		return id
	}

	return ""
}

// WithCorrelationID returns a new context with the correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, KeyCorrelationID, correlationID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
