package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/util"
)

// RequireAuth resolves the Authorization header to a user and aborts with a
// uniform 401 otherwise. Handlers behind it read the user via
// util.GetUserFromContext; nothing ever falls back to a default user.
func RequireAuth(s *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			util.RespondUnauthenticated(c)
			c.Abort()
			return
		}

		user, err := s.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			util.RespondUnauthenticated(c)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}
