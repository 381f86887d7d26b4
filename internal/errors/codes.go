package errors

import "net/http"

// ErrorCode represents the type of error
type ErrorCode string

const (
	ErrValidation      ErrorCode = "VALIDATION"
	ErrDuplicate       ErrorCode = "DUPLICATE"
	ErrUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrBadFile         ErrorCode = "BAD_FILE"
	ErrInternal        ErrorCode = "INTERNAL"
)

// StatusCodeMap maps ErrorCode to HTTP status code
var StatusCodeMap = map[ErrorCode]int{
	ErrValidation:      http.StatusBadRequest,
	ErrDuplicate:       http.StatusBadRequest,
	ErrUnauthenticated: http.StatusUnauthorized,
	ErrNotFound:        http.StatusNotFound,
	ErrBadFile:         http.StatusBadRequest,
	ErrInternal:        http.StatusInternalServerError,
}

// StatusCode returns the HTTP status code for this error code
func (e ErrorCode) StatusCode() int {
	if code, ok := StatusCodeMap[e]; ok {
		return code
	}
	return http.StatusInternalServerError
}
