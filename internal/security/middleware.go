package security

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func APIKeyGuard() fiber.Handler {
	apiKey := os.Getenv("API_KEY")

	return func(c *fiber.Ctx) error {
		if c.Get("X-API-Key") != apiKey {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}

// UserContext extracts the authenticated user id placed on the request by
// the session layer upstream. The engine only needs a positive uid in
// Locals; real identity lives outside this service.
func UserContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := strconv.Atoi(c.Get("X-User-Id"))
		if err != nil || uid <= 0 {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		c.Locals("uid", uid)
		return c.Next()
	}
}
