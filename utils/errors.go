package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries a domain error kind alongside a human-readable message.
// The handler layer maps codes to transport status; domain code never
// inspects HTTP status directly.
type AppError struct {
	Code    string
	Message string
	Origin  error // original error that caused this one, if any
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

func (appErr *AppError) Unwrap() error {
	return appErr.Origin
}

// Standard error codes for the application
const (
	ErrNotFound     = "NOT_FOUND"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN" // authenticated but not the resource owner
	ErrConflict     = "CONFLICT"
	ErrValidation   = "VALIDATION_ERROR"
)

func NewAppError(code string, message string, origin error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  origin,
	}
}

func NewNotFoundError(resource string, id string) *AppError {
	message := resource + " not found"
	if id != "" {
		message = fmt.Sprintf("%s with id %s not found", resource, id)
	}
	return &AppError{Code: ErrNotFound, Message: message}
}

func NewUnauthorizedError(reason string) *AppError {
	if reason == "" {
		reason = "Authentication required"
	}
	return &AppError{Code: ErrUnauthorized, Message: reason}
}

func NewForbiddenError(reason string) *AppError {
	if reason == "" {
		reason = "Access forbidden"
	}
	return &AppError{Code: ErrForbidden, Message: reason}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: ErrConflict, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

// IsErrorCode reports whether err is an AppError with the given code.
func IsErrorCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AppErrorToHTTPStatus converts an AppError code to an HTTP status code.
func AppErrorToHTTPStatus(errorCode string) int {
	switch errorCode {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrConflict:
		return http.StatusConflict
	case ErrValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
