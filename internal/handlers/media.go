package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/util"
)

// Upload stores a media file and returns its URL for use in a later post or
// profile update. The file is renamed to a random name; the client-supplied
// name only contributes its extension. POST /api/upload
func (h *Handlers) Upload(c *gin.Context) {
	if _, ok := util.GetUserFromContext(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.RespondBadFile(c, "no file provided")
		return
	}

	saved, ok := h.saveUpload(c, fileHeader)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": saved.URL})
}
