// file: internals/middlewares/timeout_middleware.go
package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 5 * time.Second

// RequestTimeout bounds the user context of every request. Handlers pass
// c.UserContext() into their DB calls, so a stalled query is cancelled at the
// deadline instead of holding a pooled connection indefinitely.
func RequestTimeout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
