package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.store.Profiles.FindProfileByUserID(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(profile)
}

type profileInput struct {
	Bio               string            `json:"bio"`
	Position          string            `json:"position"`
	Department        string            `json:"department"`
	Country           string            `json:"country"`
	IsPresenter       bool              `json:"is_presenter"`
	IsCommitteeMember bool              `json:"is_committee_member"`
	SocialLinks       map[string]string `json:"social_links"`
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.store.Profiles.FindProfileByUserID(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	profile.Bio = input.Bio
	profile.Position = input.Position
	profile.Department = input.Department
	profile.Country = input.Country
	profile.IsPresenter = input.IsPresenter
	profile.IsCommitteeMember = input.IsCommitteeMember
	profile.SocialLinks = input.SocialLinks
	profile.UpdatedAt = time.Now()

	if err := handler.store.Profiles.SaveProfile(&profile); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(profile)
}
