package handlers

import (
	"github.com/vsxchangeza/backend/internal/auth"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	auth  *auth.Service
	media storage.MediaStore
}

// NewHandlers creates a new handlers instance
func NewHandlers(authService *auth.Service, media storage.MediaStore) *Handlers {
	return &Handlers{
		auth:  authService,
		media: media,
	}
}

// Health reports process and database liveness
func (h *Handlers) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	code := 200

	if err := database.Health(); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
		code = 503
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}
