package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/errors"
	"github.com/vsxchangeza/backend/internal/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request: a stable machine-readable
// code plus a human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// RespondWithAPIError sends a structured API error response
func RespondWithAPIError(c *gin.Context, apiErr *errors.APIError) {
	if apiErr.Status >= http.StatusInternalServerError {
		logger.Log.Error("API error",
			zap.String("code", string(apiErr.Code)),
			zap.String("message", apiErr.Message),
			zap.Int("status", apiErr.Status),
		)
	} else {
		logger.Log.Warn("API error",
			zap.String("code", string(apiErr.Code)),
			zap.String("message", apiErr.Message),
			zap.String("field", apiErr.Field),
		)
	}

	c.JSON(apiErr.Status, ErrorResponse{
		Error: apiErr.Message,
		Code:  string(apiErr.Code),
		Field: apiErr.Field,
	})
}

// RespondUnauthenticated sends a uniform 401; the body never says why
func RespondUnauthenticated(c *gin.Context) {
	RespondWithAPIError(c, errors.Unauthenticated())
}

// RespondNotFound sends a 404 Not Found response
func RespondNotFound(c *gin.Context, resource string) {
	RespondWithAPIError(c, errors.NotFound(resource))
}

// RespondValidationError sends a 400 VALIDATION response
func RespondValidationError(c *gin.Context, field, message string) {
	RespondWithAPIError(c, errors.Validation(field, message))
}

// RespondDuplicate sends a 400 DUPLICATE response
func RespondDuplicate(c *gin.Context, resource string) {
	RespondWithAPIError(c, errors.Duplicate(resource))
}

// RespondBadFile sends a 400 BAD_FILE response
func RespondBadFile(c *gin.Context, message string) {
	RespondWithAPIError(c, errors.BadFile(message))
}

// RespondInternalError sends a 500 INTERNAL response
func RespondInternalError(c *gin.Context, message string) {
	RespondWithAPIError(c, errors.Internal(message))
}
