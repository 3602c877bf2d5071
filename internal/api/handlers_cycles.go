package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/models"
	"github.com/lunelabs/cyclefem/internal/services"
	"gorm.io/gorm"
)

// loadPredictions recomputes the forward prediction from the most recent
// records. The result is ephemeral and never persisted.
func (handler *Handler) loadPredictions(userID uint) (*services.Prediction, error) {
	recent, err := handler.repos.Cycles.ListRecentForUser(userID, predictionHistoryLimit)
	if err != nil {
		return nil, err
	}
	return services.CalculatePredictions(recent), nil
}

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.repos.Cycles.ListAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycles")
	}

	prediction, err := handler.loadPredictions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute predictions")
	}

	return c.JSON(fiber.Map{
		"cycles":      buildCycleViews(cycles),
		"predictions": buildPredictionView(prediction),
	})
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.StartDate == "" {
		return apiError(c, fiber.StatusBadRequest, "start date is required")
	}

	startDate, err := services.ParseDay(input.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}

	cycle := models.Cycle{
		UserID:    user.ID,
		StartDate: startDate,
		Flow:      models.FlowMedium,
		Symptoms:  input.Symptoms,
		Notes:     input.Notes,
	}
	if cycle.Symptoms == nil {
		cycle.Symptoms = []string{}
	}

	if input.EndDate != "" {
		endDate, err := services.ParseDay(input.EndDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end date")
		}
		if endDate.Before(startDate) {
			return apiError(c, fiber.StatusBadRequest, "end date must not be before start date")
		}
		cycle.EndDate = &endDate
	}

	if input.Flow != "" {
		if !models.ValidFlow(input.Flow) {
			return apiError(c, fiber.StatusBadRequest, "invalid flow value")
		}
		cycle.Flow = input.Flow
	}

	if err := handler.repos.Cycles.Create(&cycle); err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("cycle create failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to record cycle")
	}

	prediction, err := handler.loadPredictions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute predictions")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "cycle recorded",
		"cycle":       buildCycleView(cycle),
		"predictions": buildPredictionView(prediction),
	})
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, err := c.ParamsInt("id")
	if err != nil || cycleID <= 0 {
		return apiError(c, fiber.StatusNotFound, "cycle not found")
	}

	input := cycleUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.StartDate == nil && input.EndDate == nil && input.Flow == nil && input.Symptoms == nil && input.Notes == nil {
		return apiError(c, fiber.StatusBadRequest, "nothing to update")
	}

	cycle, err := handler.repos.Cycles.FindForUser(uint(cycleID), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "cycle not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle")
	}

	if input.StartDate != nil {
		startDate, err := services.ParseDay(*input.StartDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start date")
		}
		cycle.StartDate = startDate
	}
	if input.EndDate != nil {
		if *input.EndDate == "" {
			cycle.EndDate = nil
		} else {
			endDate, err := services.ParseDay(*input.EndDate)
			if err != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid end date")
			}
			if endDate.Before(cycle.StartDate) {
				return apiError(c, fiber.StatusBadRequest, "end date must not be before start date")
			}
			cycle.EndDate = &endDate
		}
	}
	if input.Flow != nil {
		if !models.ValidFlow(*input.Flow) {
			return apiError(c, fiber.StatusBadRequest, "invalid flow value")
		}
		cycle.Flow = *input.Flow
	}
	if input.Symptoms != nil {
		cycle.Symptoms = *input.Symptoms
		if cycle.Symptoms == nil {
			cycle.Symptoms = []string{}
		}
	}
	if input.Notes != nil {
		cycle.Notes = *input.Notes
	}

	if err := handler.repos.Cycles.Save(&cycle); err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("cycle update failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle")
	}

	prediction, err := handler.loadPredictions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute predictions")
	}

	return c.JSON(fiber.Map{
		"message":     "cycle updated",
		"predictions": buildPredictionView(prediction),
	})
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, err := c.ParamsInt("id")
	if err != nil || cycleID <= 0 {
		return apiError(c, fiber.StatusNotFound, "cycle not found")
	}

	deleted, err := handler.repos.Cycles.DeleteForUser(uint(cycleID), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "cycle not found")
	}

	prediction, err := handler.loadPredictions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute predictions")
	}

	return c.JSON(fiber.Map{
		"message":     "cycle deleted",
		"predictions": buildPredictionView(prediction),
	})
}
