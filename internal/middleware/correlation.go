package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type correlationIDKey struct{}

const correlationHeader = "X-Correlation-ID"

// CorrelationID assigns every request a correlation identifier. An incoming
// X-Correlation-ID (or X-Request-ID from older clients) wins over a generated
// one, so a caller can stitch its own traces across services. The identifier
// rides on c.Locals for handlers, on the user context for service-layer logs,
// and is echoed back in the response header.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := firstNonEmpty(
			strings.TrimSpace(c.Get(correlationHeader)),
			strings.TrimSpace(c.Get(fiber.HeaderXRequestID)),
		)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("correlation_id", id)
		c.Set(correlationHeader, id)
		c.SetUserContext(context.WithValue(c.UserContext(), correlationIDKey{}, id))

		return c.Next()
	}
}

// CorrelationIDFromContext reads the identifier stored by CorrelationID, or
// "" when the context never passed through it.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// GetCorrelationID resolves the identifier for the active request.
func GetCorrelationID(c *fiber.Ctx) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Locals("correlation_id").(string); ok && id != "" {
		return id
	}
	return CorrelationIDFromContext(c.UserContext())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
