package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit builds a sliding-window limiter keyed per authenticated user.
// Unauthenticated traffic falls back to the client IP, which groups everything
// behind a NAT together; protected routes don't hit that case since
// JWTProtected runs first.
func RateLimit(name string, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Second
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("user_id").(uint); ok && userID != 0 {
				return fmt.Sprintf("%s:u%d", name, userID)
			}
			return fmt.Sprintf("%s:ip:%s", name, c.IP())
		},
	})
}
