package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "email, password and name are required")
	}

	name := strings.TrimSpace(input.Name)
	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil || name == "" {
		return apiError(c, fiber.StatusBadRequest, "email, password and name are required")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	user, err := handler.auth.Register(email, password, name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return apiError(c, fiber.StatusBadRequest, "an account with this email already exists")
		}
		handler.logger.Error().Err(err).Msg("registration failed")
		return apiError(c, fiber.StatusInternalServerError, "server error")
	}

	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		handler.logger.Error().Err(err).Msg("token signing failed")
		return apiError(c, fiber.StatusInternalServerError, "server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "account created",
		"token":   token,
		"user":    buildUserView(&user),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.auth.Authenticate(email, password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		handler.logger.Error().Err(err).Msg("token signing failed")
		return apiError(c, fiber.StatusInternalServerError, "server error")
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user":    buildUserView(&user),
	})
}
