// Package response renders success payloads and RFC 7807 problem documents.
package response

import (
	"net/http"
	"time"

	deliverycontext "wishlist/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// MIMEProblemJSON is the media type for RFC 7807 problem documents.
const MIMEProblemJSON = "application/problem+json"

// problemTypeBase prefixes the type URI of every problem document.
const problemTypeBase = "https://api.wishlist.com/errors/"

// Problem is an RFC 7807 document extended with a machine-readable error
// block, a correlation ID and a timestamp.
type Problem struct {
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Status        int        `json:"status"`
	Detail        string     `json:"detail"`
	Error         *ErrorInfo `json:"error"`
	CorrelationID string     `json:"correlation_id"`
	Timestamp     string     `json:"timestamp"`
}

// ErrorInfo is the machine-readable error block inside a problem document.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusTitles maps status codes to RFC 9110 reason phrases used as titles.
var statusTitles = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusConflict:            "Conflict",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusInternalServerError: "Internal Server Error",
}

// Success returns a successful JSON response.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// WriteProblem renders an RFC 7807 problem document with the request's
// correlation ID and a UTC timestamp.
func WriteProblem(c echo.Context, status int, code, message, detail string) error {
	title, ok := statusTitles[status]
	if !ok {
		title = http.StatusText(status)
	}
	if detail == "" {
		detail = message
	}

	problem := Problem{
		Type:   problemTypeBase + code,
		Title:  title,
		Status: status,
		Detail: detail,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
		CorrelationID: deliverycontext.GetCorrelationID(c),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}

	c.Response().Header().Set(echo.HeaderContentType, MIMEProblemJSON)

	return c.JSON(status, problem)
}
