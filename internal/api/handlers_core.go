package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	aiMode := "fallback"
	if handler.assistant.BackendConfigured() {
		aiMode = "openai"
	}
	return c.JSON(fiber.Map{
		"status":    "ok",
		"service":   "CycleFem API",
		"database":  "sqlite",
		"ai":        aiMode,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
