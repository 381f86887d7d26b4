package util

import (
	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/models"
)

// GetUserFromContext extracts the authenticated user set by auth.RequireAuth.
// Returns the user and true, or nil and false after responding 401. There is
// deliberately no default: a request is either authenticated or it is not.
func GetUserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		RespondUnauthenticated(c)
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok {
		RespondInternalError(c, "invalid user data in context")
		return nil, false
	}
	return user, true
}
