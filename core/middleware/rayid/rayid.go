package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the request/response header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the Fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns every request a RayID.
// An incoming X-Ray-ID header is reused so that upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromCtx returns the RayID of the request, or "" when none was assigned.
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}
