package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes media to a directory on disk, served back under /uploads.
// Names are random UUIDs plus the validated extension, so concurrent uploads
// never collide and client-supplied names never touch the filesystem.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Dir returns the directory files are stored in, for static serving
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save validates the extension, writes the bytes under a generated name and
// returns the public URL
func (s *LocalStore) Save(ctx context.Context, data []byte, originalFilename, declaredMIME string) (*SavedMedia, error) {
	ext, err := ValidateExtension(originalFilename)
	if err != nil {
		return nil, err
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	dest := filepath.Join(s.dir, name)

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}

	return &SavedMedia{
		Name: name,
		URL:  s.baseURL + "/" + name,
		Kind: InferKind(declaredMIME, ext),
		Size: int64(len(data)),
	}, nil
}

var _ MediaStore = (*LocalStore)(nil)
