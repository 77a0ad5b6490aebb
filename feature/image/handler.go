package image

import (
	"errors"

	"imagine-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for images.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the image routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/image")
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGet)
	group.Put("/:name", h.HandlePut)
	group.Delete("/:name", h.HandleDelete)
}

// HandleList lists stored images.
// @Summary List Images
// @Tags image
// @Produce json
// @Success 200 {object} map[string][]string "Image names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/image [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	names, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Image list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"images": names})
}

// HandleGet streams an image.
// @Summary Get Image
// @Tags image
// @Produce octet-stream
// @Param name path string true "Image name"
// @Success 200 {file} binary "Image content"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/image/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	obj, err := h.service.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return h.fail(c, "Image fetch failed", err)
	}

	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	return c.SendStream(obj.Body, int(obj.Size))
}

// HandlePut stores the raw request body as an image.
// @Summary Store Image
// @Tags image
// @Accept octet-stream
// @Produce json
// @Param name path string true "Image name"
// @Success 201 {object} map[string]interface{} "Stored"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/image/{name} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	body := c.Body()
	key, err := h.service.Put(c.UserContext(), c.Params("name"), c.Get(fiber.HeaderContentType), body)
	if err != nil {
		return h.fail(c, "Image store failed", err)
	}

	logger.WithRayID(h.service.logger, c).Info("Image stored", zap.String("key", key), zap.Int("size", len(body)))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"key":  key,
		"size": len(body),
	})
}

// HandleDelete removes an image.
// @Summary Delete Image
// @Tags image
// @Param name path string true "Image name"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/image/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("name")); err != nil {
		return h.fail(c, "Image delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidName):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	default:
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
