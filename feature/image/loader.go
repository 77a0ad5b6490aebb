package image

import (
	"imagine-api/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the image feature over the given bucket.
func NewFeature(client storage.Client, bucket, region string, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, region, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "image"
}

// IsEnabled reports whether storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil && f.service.bucket != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
