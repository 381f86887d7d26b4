package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/vsxchangeza/backend/internal/models"
)

// ErrBadExtension is returned when an upload's extension is not on the
// allow-list. Handlers map it to a BAD_FILE response.
var ErrBadExtension = errors.New("file type not allowed")

// SavedMedia describes a stored upload
type SavedMedia struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind string `json:"kind"`
	Size int64  `json:"size"`
}

// MediaStore persists uploaded media under a generated name and returns a
// retrievable URL. Implementations must never reuse the client-supplied
// filename and must complete the write before returning, so a referencing
// record is only ever committed after its file exists.
type MediaStore interface {
	Save(ctx context.Context, data []byte, originalFilename, declaredMIME string) (*SavedMedia, error)
}

// allowedExtensions is the fixed upload allow-list
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".mov":  true,
	".webm": true,
}

// ValidateExtension returns the lowercased extension of filename, or
// ErrBadExtension when it is missing or not allowed.
func ValidateExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !allowedExtensions[ext] {
		return "", ErrBadExtension
	}
	return ext, nil
}

// InferKind classifies media as image or video from the declared MIME type
// when present, else from the extension.
func InferKind(declaredMIME, ext string) string {
	switch {
	case strings.HasPrefix(declaredMIME, "video/"):
		return models.MediaKindVideo
	case strings.HasPrefix(declaredMIME, "image/"):
		return models.MediaKindImage
	}
	switch strings.ToLower(ext) {
	case ".mp4", ".mov", ".webm":
		return models.MediaKindVideo
	default:
		return models.MediaKindImage
	}
}

// ContentType returns the MIME type to serve a stored file with
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
