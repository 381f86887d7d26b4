package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/metrics"
	"github.com/vsxchangeza/backend/internal/models"
	"github.com/vsxchangeza/backend/internal/util"
	"go.uber.org/zap"
)

// CreateCommentRequest is the body of comment creation. Comments are JSON
// only; there is no media attachment.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse is a comment with its author embedded
type CommentResponse struct {
	ID        uint                  `json:"id"`
	PostID    uint                  `json:"post_id"`
	User      models.AuthorSnapshot `json:"user"`
	Text      string                `json:"text"`
	CreatedAt time.Time             `json:"createdAt"`
}

func commentResponse(cm *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		PostID:    cm.PostID,
		User:      cm.User.Author(),
		Text:      cm.Text,
		CreatedAt: cm.CreatedAt,
	}
}

// ListComments returns a post's comments oldest first.
// GET /api/posts/:id/comments
func (h *Handlers) ListComments(c *gin.Context) {
	var post models.Post
	if err := database.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		util.RespondNotFound(c, "post")
		return
	}

	var comments []models.Comment
	err := database.DB.
		Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		logger.Log.Error("Failed to load comments", zap.Uint("post_id", post.ID), zap.Error(err))
		util.RespondInternalError(c, "failed to load comments")
		return
	}

	results := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, commentResponse(&comments[i]))
	}

	c.JSON(http.StatusOK, results)
}

// CreateComment adds a comment to a post. Text is trimmed and must be
// non-empty. POST /api/posts/:id/comments
func (h *Handlers) CreateComment(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}

	var post models.Post
	if err := database.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		util.RespondNotFound(c, "post")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondValidationError(c, "text", "comment text is required")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		util.RespondValidationError(c, "text", "comment text is required")
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		logger.Log.Error("Failed to create comment",
			logger.WithUserID(user.ID),
			zap.Uint("post_id", post.ID),
			zap.Error(err),
		)
		util.RespondInternalError(c, "failed to create comment")
		return
	}
	comment.User = *user

	metrics.Get().CommentsCreatedTotal.Inc()

	c.JSON(http.StatusCreated, commentResponse(&comment))
}
