package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListAllAbstracts(c *fiber.Ctx) error {
	abstracts, err := handler.abstracts.ListAll()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(abstracts)
}

type statusInput struct {
	Status string `json:"status" validate:"required"`
}

func (handler *Handler) SetAbstractStatus(c *fiber.Ctx) error {
	abstractID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input := statusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fields := handler.validationFields(input); fields != nil {
		return validationFailed(c, fields)
	}

	abstract, err := handler.abstracts.SetStatus(abstractID, input.Status)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(abstract)
}
