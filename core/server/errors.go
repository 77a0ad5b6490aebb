package server

import (
	"errors"

	"imagine-api/core/middleware/origin"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error returned by a handler or middleware as
// {"error": message} with a matching status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fe *fiber.Error
	switch {
	case errors.Is(err, origin.ErrRejected):
		code = fiber.StatusForbidden
		message = origin.ErrRejected.Error()
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
