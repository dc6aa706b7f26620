package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
)

var errInvalidCommitteeInput = errors.New("invalid committee input")

// PublicCommittee serves the public listing, optionally filtered by
// organizational tier. This read fails open: backend trouble yields an
// empty list, never an error page.
func (handler *Handler) PublicCommittee(c *fiber.Ctx) error {
	return c.JSON(handler.reference.PublicCommittee(c.Params("category")))
}

func (handler *Handler) ListCommittee(c *fiber.Ctx) error {
	members, err := handler.store.Committee.ListCommitteeMembers(c.Query("category"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(members)
}

func (handler *Handler) CreateCommitteeMember(c *fiber.Ctx) error {
	member := models.CommitteeMember{}
	if err := handler.parseCommitteeMember(c, &member); err != nil {
		if errors.Is(err, errInvalidCommitteeInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		return handler.respondServiceError(c, err)
	}

	fields := make(map[string]string)
	if member.Name == "" {
		fields["name"] = "required"
	}
	if member.Role == "" {
		fields["role"] = "required"
	}
	if member.Category == "" {
		fields["category"] = "required"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	if err := handler.store.Committee.CreateCommitteeMember(&member); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (handler *Handler) UpdateCommitteeMember(c *fiber.Ctx) error {
	memberID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	member, err := handler.store.Committee.FindCommitteeMemberByID(memberID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	previousImage := member.ImageURL
	if err := handler.parseCommitteeMember(c, &member); err != nil {
		if errors.Is(err, errInvalidCommitteeInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		return handler.respondServiceError(c, err)
	}
	member.UpdatedAt = time.Now()

	if err := handler.store.Committee.SaveCommitteeMember(&member); err != nil {
		return handler.respondServiceError(c, err)
	}

	if previousImage != "" && previousImage != member.ImageURL {
		if err := handler.uploads.Remove(previousImage); err != nil {
			handler.log.WithError(err).WithField("file", previousImage).Warn("stale committee image cleanup failed")
		}
	}
	return c.JSON(member)
}

func (handler *Handler) DeleteCommitteeMember(c *fiber.Ctx) error {
	memberID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	member, err := handler.store.Committee.FindCommitteeMemberByID(memberID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.store.Committee.DeleteCommitteeMember(memberID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if member.ImageURL != "" {
		if err := handler.uploads.Remove(member.ImageURL); err != nil {
			handler.log.WithError(err).WithField("file", member.ImageURL).Warn("committee image cleanup failed")
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

type committeeMemberInput struct {
	Name         string `json:"name" form:"name"`
	Role         string `json:"role" form:"role"`
	Institution  string `json:"institution" form:"institution"`
	Country      string `json:"country" form:"country"`
	Category     string `json:"category" form:"category"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
	ProfileURL   string `json:"profile_url" form:"profile_url"`
}

// parseCommitteeMember applies JSON or multipart input onto the member,
// storing an uploaded portrait when one is attached.
func (handler *Handler) parseCommitteeMember(c *fiber.Ctx, member *models.CommitteeMember) error {
	input := committeeMemberInput{
		Name:         member.Name,
		Role:         member.Role,
		Institution:  member.Institution,
		Country:      member.Country,
		Category:     member.Category,
		Email:        member.Email,
		Phone:        member.Phone,
		DisplayOrder: member.DisplayOrder,
		ProfileURL:   member.ProfileURL,
	}
	if err := c.BodyParser(&input); err != nil {
		return errInvalidCommitteeInput
	}

	member.Name = input.Name
	member.Role = input.Role
	member.Institution = input.Institution
	member.Country = input.Country
	member.Category = input.Category
	member.Email = input.Email
	member.Phone = input.Phone
	member.DisplayOrder = input.DisplayOrder
	member.ProfileURL = input.ProfileURL

	if isMultipart(c) {
		if fileHeader, err := c.FormFile("image"); err == nil {
			imageURL, err := handler.uploads.Save(c, fileHeader, "image")
			if err != nil {
				return err
			}
			member.ImageURL = imageURL
		}
	}
	return nil
}
