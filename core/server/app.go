package server

import (
	"imagine-api/core/loader"
	"imagine-api/core/middleware/jsonbody"
	"imagine-api/core/middleware/origin"
	"imagine-api/core/middleware/rayid"
	"imagine-api/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "imagine-api/docs/swagger"
)

// Liveness is the body served on GET /.
const Liveness = "API Working"

// New assembles the Fiber application: middleware in order (RayID, request
// log, JSON body, origin gate), the liveness route, the API docs and every
// feature registered with mgr under /api.
func New(settings Settings, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
		BodyLimit:             settings.BodyLimit,
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(logg))
	app.Use(jsonbody.New(jsonbody.Config{Limit: settings.JSONLimit}))
	app.Use(origin.New(origin.Config{
		Policy: settings.OriginPolicy(),
		Logger: logg,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Liveness)
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	if mgr != nil {
		if err := mgr.LoadAll(app.Group("/api")); err != nil {
			return nil, err
		}
	}

	return app, nil
}
