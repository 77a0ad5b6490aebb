package loader_test

import (
	"net/http/httptest"
	"testing"

	"imagine-api/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded++
	if s.err != nil {
		return s.err
	}
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	user := &stubFeature{name: "user", enabled: true}
	image := &stubFeature{name: "image", enabled: true}
	off := &stubFeature{name: "off", enabled: false}

	mgr := loader.NewManager(zap.NewNop())
	mgr.Register(user)
	mgr.Register(off)
	mgr.Register(image)
	assert.Len(t, mgr.Features(), 3)

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app.Group("/api")))

	assert.Equal(t, 1, user.loaded)
	assert.Equal(t, 1, image.loaded)
	assert.Equal(t, 0, off.loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/user", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/off", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &stubFeature{name: "broken", enabled: true, err: assert.AnError}
	after := &stubFeature{name: "after", enabled: true}

	mgr := loader.NewManager(nil)
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 0, after.loaded)
}
