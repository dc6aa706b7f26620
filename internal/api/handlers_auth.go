package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := services.RegisterInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fields := handler.validationFields(input); fields != nil {
		return validationFailed(c, fields)
	}

	user, err := handler.auth.Register(input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	session, err := handler.sessions.Create(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.setSessionCookie(c, session); err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

type loginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fields := handler.validationFields(input); fields != nil {
		return validationFailed(c, fields)
	}

	user, err := handler.auth.Login(input.Identifier, input.Password)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	session, err := handler.sessions.Create(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.setSessionCookie(c, session); err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(user)
}

// Logout destroys the session when one is attached and always succeeds,
// so repeating it is harmless.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	if sessionID, err := handler.sessionIDFromRequest(c); err == nil {
		if err := handler.sessions.Destroy(sessionID); err != nil {
			handler.log.WithError(err).Warn("session destroy failed")
		}
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CurrentUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
