package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/services"
)

func (handler *Handler) ListInvitations(c *fiber.Ctx) error {
	invitations, err := handler.invitations.List()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(invitations)
}

func (handler *Handler) CreateInvitation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.CreateInvitationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fields := handler.validationFields(input); fields != nil {
		return validationFailed(c, fields)
	}

	invitation, err := handler.invitations.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invitation)
}

// VerifyInvitation lets a recipient check a token before acting on it.
func (handler *Handler) VerifyInvitation(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return apiError(c, fiber.StatusBadRequest, "token is required")
	}

	invitation, err := handler.invitations.GetByToken(token)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(invitation)
}

func (handler *Handler) GetInvitation(c *fiber.Ctx) error {
	invitation, err := handler.invitations.GetByToken(c.Params("token"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(invitation)
}

func (handler *Handler) ResolveInvitation(c *fiber.Ctx) error {
	input := services.ResolveInvitationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	invitation, err := handler.invitations.Resolve(c.Params("token"), input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(invitation)
}

type attendanceResponseInput struct {
	Token       string `json:"token" validate:"required"`
	Accept      bool   `json:"accept"`
	Institution string `json:"institution"`
	Position    string `json:"position"`
}

// AttendanceResponse is the deep-link target for attendance invitations;
// it resolves by token carried in the body.
func (handler *Handler) AttendanceResponse(c *fiber.Ctx) error {
	input := attendanceResponseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fields := handler.validationFields(input); fields != nil {
		return validationFailed(c, fields)
	}

	invitation, err := handler.invitations.Resolve(input.Token, services.ResolveInvitationInput{
		Accept:      input.Accept,
		Institution: input.Institution,
		Position:    input.Position,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(invitation)
}
