package errors

import (
	"fmt"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	AuthError       ErrorType = "AUTHENTICATION_ERROR"
	ConflictError   ErrorType = "CONFLICT"
	NotFoundError   ErrorType = "NOT_FOUND"
	ConfigError     ErrorType = "CONFIG_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code,omitempty"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
	Raw     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Detail:  detail,
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Detail:  err.Error(),
		Raw:     err,
	}
}

// Helper functions for common errors
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:    NotFoundError,
		Message: fmt.Sprintf("%s not found", entity),
		Detail:  fmt.Sprintf("ID: %v", id),
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:    ValidationError,
		Message: message,
		Detail:  details,
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Type:    AuthError,
		Message: message,
	}
}

func NewConflictError(message string, detail string) *AppError {
	return &AppError{
		Type:    ConflictError,
		Message: message,
		Detail:  detail,
	}
}

func NewConfigError(message string, detail string) *AppError {
	return &AppError{
		Type:    ConfigError,
		Message: message,
		Detail:  detail,
	}
}
