package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(buildUserView(user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(input.Name); name != "" {
		updates["name"] = name
	}
	if input.CycleLength != 0 {
		if err := services.ValidateCycleLength(input.CycleLength); err != nil {
			return apiError(c, fiber.StatusBadRequest, "cycle length must be between 21 and 35 days")
		}
		updates["cycle_length"] = input.CycleLength
	}
	if len(updates) == 0 {
		return apiError(c, fiber.StatusBadRequest, "nothing to update")
	}

	if err := handler.repos.Users.UpdateByID(user.ID, updates); err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("profile update failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	updated, err := handler.repos.Users.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	return c.JSON(fiber.Map{
		"message": "profile updated",
		"user":    buildUserView(&updated),
	})
}
