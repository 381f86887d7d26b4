package errors

import (
	"fmt"
	"net/http"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"error"`
	Field   string    `json:"field,omitempty"`
	Status  int       `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation creates a VALIDATION error for a missing or malformed field
func Validation(field, message string) *APIError {
	return &APIError{
		Code:    ErrValidation,
		Message: message,
		Field:   field,
		Status:  http.StatusBadRequest,
	}
}

// Duplicate creates a DUPLICATE error
func Duplicate(resource string) *APIError {
	return &APIError{
		Code:    ErrDuplicate,
		Message: fmt.Sprintf("%s already registered", resource),
		Status:  http.StatusBadRequest,
	}
}

// Unauthenticated creates an UNAUTHENTICATED error. The message is deliberately
// uniform across causes so callers cannot distinguish bad token from missing user.
func Unauthenticated() *APIError {
	return &APIError{
		Code:    ErrUnauthenticated,
		Message: "not authenticated",
		Status:  http.StatusUnauthorized,
	}
}

// NotFound creates a NOT_FOUND error
func NotFound(resource string) *APIError {
	return &APIError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
	}
}

// BadFile creates a BAD_FILE error for disallowed uploads
func BadFile(message string) *APIError {
	return &APIError{
		Code:    ErrBadFile,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// Internal creates an INTERNAL error. The message is user-facing; never put
// driver or stack detail in it.
func Internal(message string) *APIError {
	return &APIError{
		Code:    ErrInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}
