package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/models"
	"github.com/lunelabs/cyclefem/internal/services"
)

func (handler *Handler) GetActivities(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	activities, err := handler.repos.Activities.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch activities")
	}

	views := make([]activityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, buildActivityView(activity))
	}
	return c.JSON(fiber.Map{"activities": views})
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := activityCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Date == "" {
		return apiError(c, fiber.StatusBadRequest, "date is required")
	}

	date, err := services.ParseDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	// The risk level is a snapshot of what was knowable at logging time.
	// Later cycle records change the prediction but never this value.
	prediction, err := handler.loadPredictions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute predictions")
	}

	activity := models.Activity{
		UserID:     user.ID,
		Date:       date,
		Protection: input.Protection,
		Risk:       services.ClassifyRisk(date, prediction),
		Notes:      input.Notes,
	}
	if err := handler.repos.Activities.Create(&activity); err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("activity create failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to record activity")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "activity recorded",
		"activity": buildActivityView(activity),
	})
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	activityID, err := c.ParamsInt("id")
	if err != nil || activityID <= 0 {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}

	deleted, err := handler.repos.Activities.DeleteForUser(uint(activityID), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete activity")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}

	return c.JSON(fiber.Map{"message": "activity deleted"})
}
