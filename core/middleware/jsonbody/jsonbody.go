package jsonbody

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the Fiber locals key holding the decoded request body.
const LocalsKey = "json_body"

// DefaultLimit is the maximum accepted JSON body size in bytes.
const DefaultLimit = 100 * 1024

// Config defines the config for the JSON body middleware.
type Config struct {
	// Limit is the maximum body size in bytes. Zero means DefaultLimit.
	Limit int
}

// New returns a middleware that decodes JSON request bodies before they reach
// any router. Only requests declaring Content-Type application/json are
// inspected. An empty body decodes to an empty object; the top-level value
// must be an object or an array.
func New(config ...Config) fiber.Handler {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}

	return func(c *fiber.Ctx) error {
		if !c.Is("json") {
			return c.Next()
		}

		body := c.Body()
		if len(body) > cfg.Limit {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", cfg.Limit))
		}

		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 {
			c.Locals(LocalsKey, map[string]any{})
			return c.Next()
		}

		if trimmed[0] != '{' && trimmed[0] != '[' {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body: top-level value must be an object or array")
		}

		var decoded any
		if err := c.App().Config().JSONDecoder(trimmed, &decoded); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
		}

		c.Locals(LocalsKey, decoded)
		return c.Next()
	}
}

// FromCtx returns the decoded body stored by the middleware.
func FromCtx(c *fiber.Ctx) (any, bool) {
	v := c.Locals(LocalsKey)
	return v, v != nil
}
