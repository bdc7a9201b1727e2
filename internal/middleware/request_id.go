package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request id to every request, generating one when
// the caller did not supply it.
func RequestID(c *fiber.Ctx) error {
	reqID := c.Get(RequestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	c.Locals("request_id", reqID)
	c.Set(RequestIDHeader, reqID)

	return c.Next()
}
