package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/services"
)

// GetStatistics aggregates over the full history, not the recency-capped
// slice the prediction engine sees.
func (handler *Handler) GetStatistics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.repos.Cycles.ListAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch statistics")
	}

	return c.JSON(services.CalculateStatistics(cycles))
}
