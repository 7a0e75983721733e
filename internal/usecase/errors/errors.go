package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserNotActive = errors.New("user is not active")
)

// Analysis errors
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrAggregationFailed = errors.New("failed to load meetings")
)

// ValidationError names the first missing or malformed request field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidRequest) hold for every ValidationError
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
