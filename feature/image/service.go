package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"imagine-api/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the key prefix all images are stored under.
const Prefix = "images/"

var (
	// ErrInvalidName is returned for names outside [A-Za-z0-9._-] or containing "..".
	ErrInvalidName = errors.New("invalid image name")
	// ErrNotFound is returned when the image does not exist.
	ErrNotFound = errors.New("image not found")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Object is an opened image.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Service stores and serves images from object storage.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewService creates a new image service.
func NewService(client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// List returns the names of stored images.
func (s *Service) List(ctx context.Context) ([]string, error) {
	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			if storage.IsNotFound(obj.Err) {
				return names, nil
			}
			return nil, fmt.Errorf("failed to list images: %w", obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, Prefix))
	}
	return names, nil
}

// Get opens an image for reading. The caller closes Body.
func (s *Service) Get(ctx context.Context, name string) (*Object, error) {
	key, err := objectKey(name)
	if err != nil {
		return nil, err
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	body, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}

	return &Object{Body: body, Size: info.Size, ContentType: info.ContentType}, nil
}

// Put stores data under name, creating the bucket on first use.
func (s *Service) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key, err := objectKey(name)
	if err != nil {
		return "", err
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return "", err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", key, err)
	}
	return key, nil
}

// Delete removes an image. Removing a missing image succeeds.
func (s *Service) Delete(ctx context.Context, name string) error {
	key, err := objectKey(name)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func objectKey(name string) (string, error) {
	if name == "." || !namePattern.MatchString(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return Prefix + name, nil
}
