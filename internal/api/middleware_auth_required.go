package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired authenticates the bearer token and loads the account into
// request locals. A missing token and a bad token answer differently, the
// contract the original client expects.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		if errors.Is(err, errMissingToken) {
			return apiError(c, fiber.StatusUnauthorized, "access token required")
		}
		return apiError(c, fiber.StatusForbidden, "invalid token")
	}

	claims, err := handler.parseAuthToken(token)
	if err != nil {
		return apiError(c, fiber.StatusForbidden, "invalid token")
	}

	user, err := handler.auth.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusForbidden, "invalid token")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
