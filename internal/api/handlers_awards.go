package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
)

func (handler *Handler) PublicAwards(c *fiber.Ctx) error {
	awards, err := handler.reference.PublicAwards()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(awards)
}

func (handler *Handler) ListAwards(c *fiber.Ctx) error {
	awards, err := handler.store.Awards.ListAwards(false)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(awards)
}

type awardInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Eligibility *string    `json:"eligibility"`
	Amount      *string    `json:"amount"`
	Deadline    *time.Time `json:"deadline"`
	IsActive    *bool      `json:"is_active"`
}

func (handler *Handler) CreateAward(c *fiber.Ctx) error {
	input := awardInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	fields := make(map[string]string)
	if input.Name == nil || *input.Name == "" {
		fields["name"] = "required"
	}
	if input.Description == nil || *input.Description == "" {
		fields["description"] = "required"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	award := models.ResearchAward{
		Name:        *input.Name,
		Description: *input.Description,
		Deadline:    input.Deadline,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if input.Eligibility != nil {
		award.Eligibility = *input.Eligibility
	}
	if input.Amount != nil {
		award.Amount = *input.Amount
	}
	if input.IsActive != nil {
		award.IsActive = *input.IsActive
	}

	if err := handler.store.Awards.CreateAward(&award); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(award)
}

func (handler *Handler) UpdateAward(c *fiber.Ctx) error {
	awardID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	award, err := handler.store.Awards.FindAwardByID(awardID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	input := awardInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.Name != nil {
		award.Name = *input.Name
	}
	if input.Description != nil {
		award.Description = *input.Description
	}
	if input.Eligibility != nil {
		award.Eligibility = *input.Eligibility
	}
	if input.Amount != nil {
		award.Amount = *input.Amount
	}
	if input.Deadline != nil {
		award.Deadline = input.Deadline
	}
	if input.IsActive != nil {
		award.IsActive = *input.IsActive
	}
	award.UpdatedAt = time.Now()

	if err := handler.store.Awards.SaveAward(&award); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(award)
}

func (handler *Handler) DeleteAward(c *fiber.Ctx) error {
	awardID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.store.Awards.DeleteAward(awardID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
