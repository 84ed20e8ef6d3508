package handler

import (
	"github.com/gofiber/fiber/v2"

	"listapi/internal/service"
)

// GetListItems returns the handler serving the item list.
//
// @Summary Get list items
// @Description Returns all items as a JSON array of strings, in fixed order.
// @Tags items
// @Produce json
// @Success 200 {array} string
// @Router /api/get-list-items [get]
func GetListItems(svc service.ListService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Items(c.UserContext()))
	}
}

// HealthCheck returns the health endpoint handler. There are no backing
// dependencies to probe, so the check is static.
//
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe returns the minimal probe handler for orchestrators.
//
// @Summary Liveness probe
// @Tags ops
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, listSvc service.ListService) {
	app.Get("/api/get-list-items", GetListItems(listSvc))

	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())
}
