// file: internals/route/base_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	database "kursusku_backend/internals/databases"
	helper "kursusku_backend/internals/helpers"
)

// BaseRoutes registers routes that live outside the API groups.
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
		}
		return helper.JsonOK(c, "ok", fiber.Map{"status": "healthy"})
	})
}
