package origin

import (
	"strings"

	"imagine-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// AllowedMethods are the methods advertised to cross-origin callers.
var AllowedMethods = []string{
	fiber.MethodGet,
	fiber.MethodPost,
	fiber.MethodPut,
	fiber.MethodDelete,
}

// Config defines the config for the origin gate middleware.
type Config struct {
	Policy Policy
	// Logger receives a warning for every rejected request. Optional.
	Logger *zap.Logger
}

// New returns the origin gate. Denied requests end with a *RejectedError and
// never reach the next handler. Admitted requests pass through Fiber's CORS
// middleware, which echoes the specific request origin with credentials
// enabled and answers preflight requests.
func New(config Config) fiber.Handler {
	logg := config.Logger
	if logg == nil {
		logg = zap.NewNop()
	}
	policy := config.Policy

	headers := cors.New(cors.Config{
		AllowOriginsFunc: func(o string) bool {
			return Decide(o, policy) == Allow
		},
		AllowMethods:     strings.Join(AllowedMethods, ","),
		AllowCredentials: true,
	})

	return func(c *fiber.Ctx) error {
		o := c.Get(fiber.HeaderOrigin)
		if Decide(o, policy) == Deny {
			logger.WithRayID(logg, c).Warn("Origin rejected",
				zap.String("origin", o),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
			return &RejectedError{Origin: o}
		}
		return headers(c)
	}
}
