package middleware

import (
	"log"
	"time"

	"walletpay/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
)

const idempotencyTTL = 24 * time.Hour

type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// Idempotency replays the stored response for repeated requests
// carrying the same Idempotency-Key header. Requests without the header
// pass through untouched.
func Idempotency(cacheService *cache.CacheService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")
		if key == "" {
			return c.Next()
		}

		cacheKey := cacheService.GenerateKey("idempotency", "key", key)

		var cached cachedResponse
		found, err := cacheService.Get(c.Context(), cacheKey, &cached)
		if err == nil && found {
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", "application/json")
			return c.Status(cached.Status).Send(cached.Body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Only successful outcomes are replayable; failures may be retried.
		status := c.Response().StatusCode()
		if status >= 200 && status < 300 {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())

			entry := cachedResponse{Status: status, Body: body}
			if err := cacheService.SetWithTTL(c.Context(), cacheKey, entry, idempotencyTTL); err != nil {
				log.Printf("Failed to save idempotency key %s: %v", key, err)
			}
		}

		return nil
	}
}
