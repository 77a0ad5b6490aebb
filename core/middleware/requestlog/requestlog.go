package requestlog

import (
	"time"

	"imagine-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging the start and outcome of every request.
// It must be registered after rayid so entries carry the request's RayID.
func New(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.String("origin", c.Get(fiber.HeaderOrigin)),
		)

		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err), zap.Duration("latency", time.Since(start)))
			return err
		}

		l.Debug("Request completed",
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
