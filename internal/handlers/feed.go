package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/metrics"
	"github.com/vsxchangeza/backend/internal/models"
	"github.com/vsxchangeza/backend/internal/storage"
	"github.com/vsxchangeza/backend/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultFeedLimit is the page size when the client doesn't ask for one
const DefaultFeedLimit = 12

// MaxFeedLimit caps the page size a client may request
const MaxFeedLimit = 50

// CreatePostRequest is the JSON form of post creation, used when the media has
// already been uploaded separately.
type CreatePostRequest struct {
	Text      string `json:"text"`
	Media     string `json:"media"`
	MediaType string `json:"mediaType"`
}

// PostResponse is a feed entry with its author embedded so the client never
// needs a second lookup.
type PostResponse struct {
	ID        uint                  `json:"id"`
	User      models.AuthorSnapshot `json:"user"`
	Text      string                `json:"text"`
	Media     string                `json:"media"`
	MediaType string                `json:"mediaType"`
	Approvals int                   `json:"approvals"`
	Shares    int                   `json:"shares"`
	Comments  int64                 `json:"comments"`
	CreatedAt time.Time             `json:"createdAt"`
}

// commentCounts returns comment totals keyed by post id for one feed page
func commentCounts(posts []models.Post) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(posts))
	if len(posts) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}

	var rows []struct {
		PostID uint
		Total  int64
	}
	err := database.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", ids).
		Group("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	return counts, nil
}

func postResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		User:      p.User.Author(),
		Text:      p.Text,
		Media:     p.MediaURL,
		MediaType: p.MediaType,
		Approvals: p.Approvals,
		Shares:    p.Shares,
		CreatedAt: p.CreatedAt,
	}
}

// ListPosts returns the global feed, newest first. hasMore is true when the
// page came back full, so the last page can read false-negative if the total
// is an exact multiple of the limit. GET /api/posts
func (h *Handlers) ListPosts(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"), DefaultFeedLimit, MaxFeedLimit)

	var posts []models.Post
	err := database.DB.
		Preload("User").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		logger.Log.Error("Failed to load feed", zap.Error(err))
		util.RespondInternalError(c, "failed to load feed")
		return
	}

	counts, err := commentCounts(posts)
	if err != nil {
		logger.Log.Error("Failed to count comments", zap.Error(err))
		util.RespondInternalError(c, "failed to load feed")
		return
	}

	results := make([]PostResponse, 0, len(posts))
	for i := range posts {
		resp := postResponse(&posts[i])
		resp.Comments = counts[posts[i].ID]
		results = append(results, resp)
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":   results,
		"page":    page,
		"hasMore": len(posts) == limit,
	})
}

// CreatePost publishes a new post. Accepts either JSON (text plus an optional
// already-uploaded media URL) or multipart form data with an attached file. A
// post must carry text or media; an attached file is written to storage before
// the post record is committed. POST /api/posts
func (h *Handlers) CreatePost(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}

	post := models.Post{UserID: user.ID}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		post.Text = strings.TrimSpace(c.PostForm("text"))

		fileHeader, err := c.FormFile("media")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			util.RespondValidationError(c, "media", "invalid media attachment")
			return
		}
		if fileHeader != nil {
			saved, ok := h.saveUpload(c, fileHeader)
			if !ok {
				return
			}
			post.MediaURL = saved.URL
			post.MediaType = saved.Kind
		}
	} else {
		var req CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			util.RespondValidationError(c, "", "invalid request body")
			return
		}
		post.Text = strings.TrimSpace(req.Text)
		post.MediaURL = req.Media
		post.MediaType = req.MediaType
		if post.MediaURL != "" && post.MediaType == "" {
			post.MediaType = storage.InferKind("", filepath.Ext(post.MediaURL))
		}
	}

	if !post.HasContent() {
		util.RespondValidationError(c, "text", "post needs text or media")
		return
	}

	if err := database.DB.Create(&post).Error; err != nil {
		logger.Log.Error("Failed to create post", logger.WithUserID(user.ID), zap.Error(err))
		util.RespondInternalError(c, "failed to create post")
		return
	}
	post.User = *user

	metrics.Get().PostsCreatedTotal.Inc()
	logger.Log.Info("Post created",
		logger.WithUserID(user.ID),
		zap.Uint("post_id", post.ID),
		zap.String("media_type", post.MediaType),
	)

	c.JSON(http.StatusCreated, postResponse(&post))
}

// ApprovePost increments a post's approval counter. Approvals are not
// deduplicated: every call counts, including repeats from the same user.
// POST /api/posts/:id/approve
func (h *Handlers) ApprovePost(c *gin.Context) {
	if _, ok := util.GetUserFromContext(c); !ok {
		return
	}

	var post models.Post
	if err := database.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		util.RespondNotFound(c, "post")
		return
	}

	// Increment in SQL so concurrent approvals never lose updates
	err := database.DB.Model(&post).
		UpdateColumn("approvals", gorm.Expr("approvals + ?", 1)).Error
	if err != nil {
		logger.Log.Error("Failed to approve post", zap.Uint("post_id", post.ID), zap.Error(err))
		util.RespondInternalError(c, "failed to approve post")
		return
	}

	if err := database.DB.First(&post, post.ID).Error; err != nil {
		util.RespondInternalError(c, "failed to approve post")
		return
	}

	metrics.Get().ApprovalsTotal.Inc()

	c.JSON(http.StatusOK, gin.H{"approvals": post.Approvals})
}

// saveUpload reads a multipart attachment and writes it through the media
// store. Responds with the appropriate error and returns ok=false on failure.
func (h *Handlers) saveUpload(c *gin.Context, fileHeader *multipart.FileHeader) (*storage.SavedMedia, bool) {
	f, err := fileHeader.Open()
	if err != nil {
		util.RespondBadFile(c, "could not read uploaded file")
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		util.RespondBadFile(c, "could not read uploaded file")
		return nil, false
	}

	saved, err := h.media.Save(c.Request.Context(), data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, storage.ErrBadExtension) {
			util.RespondBadFile(c, "file type not allowed")
			return nil, false
		}
		logger.Log.Error("Failed to store media", zap.String("filename", fileHeader.Filename), zap.Error(err))
		util.RespondInternalError(c, "failed to store media")
		return nil, false
	}

	metrics.Get().MediaUploadsTotal.WithLabelValues(saved.Kind).Inc()
	return saved, true
}
