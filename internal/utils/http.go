package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the standard error response shape.
type ErrorBody struct {
	Error             string `json:"error"`
	Message           string `json:"message"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}

// ErrorResponseHandler sends an error response with a machine-readable code
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorBody{
		Error:   code,
		Message: message,
	})
}

// RetryErrorResponse sends an error response carrying a retry-after hint
func RetryErrorResponse(c echo.Context, statusCode int, code, message string, retryAfter int) error {
	return c.JSON(statusCode, ErrorBody{
		Error:             code,
		Message:           message,
		RetryAfterSeconds: retryAfter,
	})
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, "not_found", message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, "internal_error", message)
}
