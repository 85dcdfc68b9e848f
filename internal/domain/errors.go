package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// Token errors
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrMissingSecret   = errors.New("token signing secret is not configured")
	ErrUnauthenticated = errors.New("authentication required")
)

// Task errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskForbidden = errors.New("you do not have permission to access this task")
)

// ValidationError signals a malformed or incomplete request. The message is
// surfaced to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
