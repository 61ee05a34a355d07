package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries the HTTP status a failure maps to, so handlers never
// pick status codes themselves.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"msg"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Validation reports malformed, missing or out-of-range input (HTTP 400).
func Validation(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Auth reports bad credentials or a missing/invalid/expired token (HTTP 401).
func Auth(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

var (
	ErrUsernameTaken      = Validation("username already exists")
	ErrInvalidCredentials = Auth("incorrect username or password")
	ErrTokenRequired      = Auth("authorization header required")
	ErrTokenInvalid       = Auth("invalid or expired token")
)

// GetStatus maps any error to its HTTP status; unknown errors become 500.
func GetStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// GetMessage returns the client-facing message. Unknown errors are masked
// so internals never leak into responses.
func GetMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// IsValidation reports whether err belongs to the 400 bucket.
func IsValidation(err error) bool {
	return GetStatus(err) == http.StatusBadRequest
}
