// file: internals/helpers/auth/workspace_context.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kursusku_backend/internals/constants"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID      = "user_id"
	LocWorkspaceID = "workspace_id"
	LocRoles       = "roles"
)

// GetWorkspaceID resolves the active tenant from the token claims. Every
// course/section/module row is scoped by this id; controllers must never
// trust a workspace id from the request body.
func GetWorkspaceID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocWorkspaceID).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Workspace not resolved from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid workspace id in token")
	}
	return id, nil
}

// GetUserID returns the authenticated user's id.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User not resolved from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

// Roles returns the normalized workspace roles from the token. The claims
// value may be a []any (JSON array) or a comma separated string.
func Roles(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, strings.ToLower(strings.TrimSpace(s)))
			}
		}
		return out
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.ToLower(strings.TrimSpace(p)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func HasRole(c *fiber.Ctx, want ...string) bool {
	have := Roles(c)
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// IsEditor reports whether the user may use the course builder.
func IsEditor(c *fiber.Ctx) bool {
	return HasRole(c, constants.RoleOwner, constants.RoleAdmin, constants.RoleInstructor)
}
