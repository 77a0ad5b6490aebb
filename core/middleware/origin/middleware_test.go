package origin_test

import (
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"imagine-api/core/middleware/origin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// setupApp mounts the gate in front of a single route and counts how often
// the route runs. Rejections are rendered as 403 like the real app does.
func setupApp(t *testing.T, p origin.Policy, l *zap.Logger) (*fiber.App, *int) {
	t.Helper()
	var mu sync.Mutex
	hits := 0

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, origin.ErrRejected) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": origin.ErrRejected.Error()})
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Use(origin.New(origin.Config{Policy: p, Logger: l}))
	app.Get("/api/user/status", func(c *fiber.Ctx) error {
		mu.Lock()
		hits++
		mu.Unlock()
		return c.SendString("ok")
	})
	return app, &hits
}

func TestNew_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		development bool
		wantStatus  int
		wantACAO    string
	}{
		{"AllowListedProduction", "https://imaginexx.vercel.app", false, 200, "https://imaginexx.vercel.app"},
		{"UnknownProduction", "https://evil.example", false, 403, ""},
		{"UnknownDevelopment", "https://evil.example", true, 200, "https://evil.example"},
		{"NoOriginProduction", "", false, 200, ""},
		{"NoOriginDevelopment", "", true, 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, hits := setupApp(t, origin.Policy{AllowList: testList, Development: tt.development}, nil)

			req := httptest.NewRequest("GET", "/api/user/status", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantACAO, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
			if tt.wantStatus == 200 {
				assert.Equal(t, 1, *hits)
			} else {
				assert.Equal(t, 0, *hits, "denied request must not reach the router")
			}
		})
	}
}

func TestNew_CredentialsEchoOrigin(t *testing.T) {
	app, _ := setupApp(t, origin.Policy{AllowList: testList}, nil)

	req := httptest.NewRequest("GET", "/api/user/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.NotEqual(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
	assert.Contains(t, resp.Header.Get(fiber.HeaderVary), "Origin")
}

func TestNew_Preflight(t *testing.T) {
	app, hits := setupApp(t, origin.Policy{AllowList: testList}, nil)

	t.Run("Allowed", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/user/status", nil)
		req.Header.Set("Origin", "https://imaginexx.vercel.app")
		req.Header.Set(fiber.HeaderAccessControlRequestMethod, "PUT")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "GET,POST,PUT,DELETE", resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
		assert.Equal(t, "https://imaginexx.vercel.app", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		assert.Equal(t, 0, *hits)
	})

	t.Run("Denied", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/user/status", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set(fiber.HeaderAccessControlRequestMethod, "GET")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
	})
}

func TestNew_LogsRejection(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	app, _ := setupApp(t, origin.Policy{AllowList: testList}, zap.New(core))

	req := httptest.NewRequest("GET", "/api/user/status", nil)
	req.Header.Set("Origin", "https://evil.example")
	_, err := app.Test(req)
	require.NoError(t, err)

	entries := logs.FilterMessage("Origin rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "https://evil.example", entries[0].ContextMap()["origin"])
}

func TestNew_ConcurrentRequests(t *testing.T) {
	app, hits := setupApp(t, origin.Policy{AllowList: testList}, nil)

	origins := []string{"http://localhost:3000", "https://evil.example", "", "https://imaginexx.vercel.app"}
	want := map[string]int{"http://localhost:3000": 200, "https://evil.example": 403, "": 200, "https://imaginexx.vercel.app": 200}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		o := origins[i%len(origins)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("GET", "/api/user/status", nil)
			if o != "" {
				req.Header.Set("Origin", o)
			}
			resp, err := app.Test(req)
			if assert.NoError(t, err) {
				assert.Equal(t, want[o], resp.StatusCode, o)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, *hits)
}
