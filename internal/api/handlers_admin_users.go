package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.store.Users.ListUsers()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(users)
}

type roleInput struct {
	Role string `json:"role"`
}

func (handler *Handler) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input := roleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Role != models.RoleUser && input.Role != models.RoleAdmin {
		return validationFailed(c, map[string]string{"role": "must be user or admin"})
	}

	if _, err := handler.store.Users.FindUserByID(userID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.store.Users.UpdateUserRole(userID, input.Role); err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.log.WithField("user_id", userID).WithField("role", input.Role).Info("user role updated")
	user, err := handler.store.Users.FindUserByID(userID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(user)
}
