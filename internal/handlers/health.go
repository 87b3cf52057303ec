package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health is the public liveness probe.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
