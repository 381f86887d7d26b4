package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store uploads media to an S3 bucket fronted by a CDN. Selected with
// MEDIA_STORE=s3; the local disk store is the default.
type S3Store struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

// NewS3Store creates a new S3-backed media store
func NewS3Store(region, bucket, baseURL string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		region:  region,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save validates the extension and uploads the bytes under a generated key
func (s *S3Store) Save(ctx context.Context, data []byte, originalFilename, declaredMIME string) (*SavedMedia, error) {
	ext, err := ValidateExtension(originalFilename)
	if err != nil {
		return nil, err
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	now := time.Now()
	key := fmt.Sprintf("media/%d/%02d/%s", now.Year(), now.Month(), name)

	contentType := declaredMIME
	if contentType == "" {
		contentType = ContentType(ext)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"upload-timestamp":  now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &SavedMedia{
		Name: name,
		URL:  fmt.Sprintf("%s/%s", s.baseURL, key),
		Kind: InferKind(declaredMIME, ext),
		Size: int64(len(data)),
	}, nil
}

// CheckBucketAccess verifies that we can reach the configured bucket
func (s *S3Store) CheckBucketAccess(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("cannot access S3 bucket %s: %w", s.bucket, err)
	}

	return nil
}

var _ MediaStore = (*S3Store)(nil)
