package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIKeyMiddleware gates admin routes behind the static key from the
// configuration. The comparison is a plain equality check against the
// Authorization header, matching how the data-reload endpoint has always
// been protected.
func APIKeyMiddleware(apiKey string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			logger.Warn("Admin API key is not configured, rejecting request")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Clé API invalide",
			})
		}

		key := c.Get("Authorization")
		if key != apiKey {
			logger.Warn("Invalid admin API key")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Clé API invalide",
			})
		}

		return c.Next()
	}
}
