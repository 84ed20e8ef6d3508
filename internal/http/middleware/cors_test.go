package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCORSPreflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://example.com")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, "GET")
	req.Header.Set(fiber.HeaderAccessControlRequestHeaders, "X-Custom-Header")

	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))

	methods := resp.Header.Get(fiber.HeaderAccessControlAllowMethods)
	assert.Contains(t, methods, "GET")
	assert.Contains(t, methods, "OPTIONS")

	// Requested headers are echoed back since no allow list is configured
	assert.Equal(t, "X-Custom-Header", resp.Header.Get(fiber.HeaderAccessControlAllowHeaders))
}

func TestCORSSimpleRequest(t *testing.T) {
	app := fiber.New()
	app.Use(CORS())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("should echo any origin", func(t *testing.T) {
		for _, origin := range []string{"http://example.com", "https://app.internal:8443"} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(fiber.HeaderOrigin, origin)

			resp, _ := app.Test(req)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, origin, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
			assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
		}
	})

	t.Run("should skip requests without origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})
}

func TestCORSDisabled(t *testing.T) {
	// Without the middleware mounted (CORS_ENABLED=false in main) no
	// cross-origin headers appear, even for requests carrying an Origin.
	app := fiber.New()

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://example.com")

	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}
