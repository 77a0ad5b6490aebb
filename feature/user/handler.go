package user

import (
	"imagine-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the user router.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/user")
	group.Get("/status", h.HandleStatus)
}

// HandleStatus reports database availability for the user router.
// @Summary User Router Status
// @Description Pings the database backing the user router and returns pool statistics.
// @Tags user
// @Produce json
// @Success 200 {object} user.Status "Database up"
// @Failure 503 {object} user.Status "Database down"
// @Router /api/user/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	st, err := h.service.Status(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Database status check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(st)
	}
	return c.JSON(st)
}
