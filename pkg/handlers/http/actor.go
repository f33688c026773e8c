package http

import "github.com/gofiber/fiber/v2"

// actorFromContext reads the staff name the auth middleware stored on the
// request. Empty when auth is disabled (local development).
func actorFromContext(c *fiber.Ctx) string {
	if actor, ok := c.Locals("staff").(string); ok {
		return actor
	}
	return ""
}
