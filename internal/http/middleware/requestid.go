package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id on both request and response.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where downstream handlers find the id in locals.
	RequestIDLocalKey = "request_id"
)

// RequestID tags every request with an id: an incoming X-Request-ID is kept,
// otherwise a fresh UUID is minted. The id lands in context locals for the
// logger and event logs, and echoes back on the response header so an admin
// can quote it when a dashboard call fails.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
