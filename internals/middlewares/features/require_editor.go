// file: internals/middlewares/features/require_editor.go
package features

import (
	"github.com/gofiber/fiber/v2"

	"kursusku_backend/internals/constants"
	helperAuth "kursusku_backend/internals/helpers/auth"
)

// IsWorkspaceEditor guards the course-builder group: owner, admin or
// instructor roles only.
func IsWorkspaceEditor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsEditor(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorEditor("course builder"))
		}
		return c.Next()
	}
}

// IsWorkspaceAdmin guards destructive admin-only operations.
func IsWorkspaceAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasRole(c, constants.RoleOwner, constants.RoleAdmin) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("workspace administration"))
		}
		return c.Next()
	}
}
