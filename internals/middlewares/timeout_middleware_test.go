// file: internals/middlewares/timeout_middleware_test.go
package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestTimeout())

	var deadline time.Time
	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, hasDeadline = c.UserContext().Deadline()
		return c.SendStatus(fiber.StatusOK)
	})

	before := time.Now()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.True(t, hasDeadline, "user context must carry a deadline")
	remaining := deadline.Sub(before)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, requestTimeout+time.Second)
}
