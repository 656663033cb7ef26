package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smarthire/placement-api/internal/utils"
)

// RequireRole gates a route group on the role bound by JWTProtected. The
// token middleware only ever stores known lowercase roles, so a plain string
// comparison suffices; a missing or unknown role fails closed.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, _ := c.Locals("user_role").(string)
		if current != "" {
			for _, role := range roles {
				if current == role {
					return c.Next()
				}
			}
		}
		return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
	}
}
