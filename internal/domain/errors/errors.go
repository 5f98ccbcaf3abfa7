// Package errors defines the application error taxonomy. Every failure that
// crosses the use-case boundary is one of the kinds below; the HTTP delivery
// layer renders them exhaustively in one place and domain code never builds
// HTTP responses itself.
package errors

import (
	"net/http"

	"wishlist/internal/errors"
)

// Error kinds. The kind doubles as the machine-readable error code and as the
// final segment of the RFC 7807 "type" URI.
const (
	KindValidation   = "validation_error"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindConflict     = "conflict"
	KindRateLimit    = "rate_limit_exceeded"
	KindInternal     = "internal_error"
	KindBusiness     = "business_error"
	KindDatabase     = "database_error"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int    // HTTP status code
	Kind() string     // Error kind, e.g. "validation_error"
	Message() string  // User-friendly error message
	Details() string  // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	kind     string
	message  string
	details  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, kind, message, details string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		kind:     kind,
		message:  message,
		details:  details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Kind returns the error kind
func (e *BaseError) Kind() string {
	return e.kind
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy of the error carrying a specific message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		kind:     e.kind,
		message:  message,
		details:  e.details,
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		kind:     e.kind,
		message:  e.message,
		details:  details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		KindValidation,
		"The request contains invalid data",
		"",
	)

	// Authentication-related errors.
	// ErrInvalidCredentials is deliberately shared by the "no such user" and
	// "wrong password" paths so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Invalid username or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Invalid token",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		KindForbidden,
		"Access denied",
		"",
	)

	// Resource errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"User not found",
		"",
	)

	ErrWishNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"Wish not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"Resource not found",
		"",
	)

	ErrUsernameConflict = NewBaseError(
		http.StatusConflict,
		KindConflict,
		"Username already exists",
		"",
	)

	ErrEmailConflict = NewBaseError(
		http.StatusConflict,
		KindConflict,
		"Email already exists",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		KindConflict,
		"Resource conflict",
		"",
	)

	// Rate-limiting errors
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		KindRateLimit,
		"Too Many Requests",
		"",
	)

	ErrIPBlocked = NewBaseError(
		http.StatusTooManyRequests,
		KindRateLimit,
		"IP address is temporarily blocked due to too many failed attempts",
		"",
	)

	// General errors
	ErrBusinessRule = NewBaseError(
		http.StatusBadRequest,
		KindBusiness,
		"A business rule violation occurred",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		KindInternal,
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Kind returns the error kind
func (e *DatabaseExecuteError) Kind() string {
	return KindDatabase
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "A database error occurred"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the wrapped database error for errors.Is/As checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
