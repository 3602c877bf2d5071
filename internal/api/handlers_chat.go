package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/services"
)

func (handler *Handler) Chat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	recent, err := handler.repos.Cycles.ListRecentForUser(user.ID, predictionHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle history")
	}
	prediction := services.CalculatePredictions(recent)

	reply := handler.assistant.Answer(c.Context(), user, message, len(recent), prediction)

	payload := fiber.Map{
		"message":   "response generated",
		"response":  reply.Response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if reply.Fallback {
		payload["message"] = "response generated (fallback mode)"
		payload["fallback"] = true
	}
	return c.JSON(payload)
}

func (handler *Handler) ChatHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	messages, err := handler.repos.Chats.ListRecentForUser(user.ID, chatHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch chat history")
	}

	views := make([]chatEntryView, 0, len(messages))
	for _, message := range messages {
		views = append(views, buildChatEntryView(message))
	}
	return c.JSON(fiber.Map{"history": views})
}
