package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/auth"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/util"
	"go.uber.org/zap"
)

// Register creates a new account and returns a signed token alongside the
// identifying fields. POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondValidationError(c, "", "email and password are required")
		return
	}

	resp, err := h.auth.Register(req)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			util.RespondDuplicate(c, "email")
			return
		}
		logger.Log.Error("Registration failed", zap.Error(err))
		util.RespondInternalError(c, "failed to register user")
		return
	}

	logger.Log.Info("User registered",
		logger.WithUserID(resp.User.ID),
		zap.String("role", resp.User.Role),
	)

	c.JSON(http.StatusCreated, gin.H{
		"id":        resp.User.ID,
		"email":     resp.User.Email,
		"firstName": resp.User.FirstName,
		"role":      resp.User.Role,
		"token":     resp.Token,
	})
}

// Login verifies credentials and returns a fresh token with the full profile.
// Invalid email and invalid password produce the same response. POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondValidationError(c, "", "email and password are required")
		return
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.RespondUnauthenticated(c)
			return
		}
		logger.Log.Error("Login failed", zap.Error(err))
		util.RespondInternalError(c, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": resp.Token,
		"user":  resp.User,
	})
}
