package api

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
	"github.com/symposiahq/symposia/internal/services"
)

func (handler *Handler) ListMyAbstracts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	abstracts, err := handler.abstracts.ListMine(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(abstracts)
}

func (handler *Handler) SubmitAbstract(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.SubmitAbstractInput{}
	if isMultipart(c) {
		input.Title = c.FormValue("title")
		input.Category = c.FormValue("category")
		input.Content = c.FormValue("content")
		input.Keywords = c.FormValue("keywords")
		if raw := c.FormValue("authors"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &input.Authors); err != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid authors payload")
			}
		}
		if fileHeader, err := c.FormFile("file"); err == nil {
			fileURL, err := handler.uploads.Save(c, fileHeader, "file")
			if err != nil {
				return handler.respondServiceError(c, err)
			}
			input.FileURL = fileURL
		}
	} else if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	abstract, err := handler.abstracts.Submit(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(abstract)
}

func (handler *Handler) GetAbstract(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	abstractID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	abstract, err := handler.store.Abstracts.FindAbstractByID(abstractID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if abstract.UserID != user.ID && user.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}
	return c.JSON(abstract)
}

func (handler *Handler) UpdateAbstract(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	abstractID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input := services.UpdateAbstractInput{}
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		if values, ok := form.Value["title"]; ok && len(values) > 0 {
			input.Title = &values[0]
		}
		if values, ok := form.Value["category"]; ok && len(values) > 0 {
			input.Category = &values[0]
		}
		if values, ok := form.Value["content"]; ok && len(values) > 0 {
			input.Content = &values[0]
		}
		if values, ok := form.Value["keywords"]; ok && len(values) > 0 {
			input.Keywords = &values[0]
		}
		if values, ok := form.Value["authors"]; ok && len(values) > 0 {
			if err := json.Unmarshal([]byte(values[0]), &input.Authors); err != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid authors payload")
			}
		}
		if fileHeader, err := c.FormFile("file"); err == nil {
			fileURL, err := handler.uploads.Save(c, fileHeader, "file")
			if err != nil {
				return handler.respondServiceError(c, err)
			}
			input.FileURL = fileURL
		}
	} else if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	abstract, err := handler.abstracts.Update(abstractID, user.ID, user.Role, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(abstract)
}

func (handler *Handler) DeleteAbstract(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	abstractID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.abstracts.Delete(abstractID, user.ID, user.Role); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), "multipart/form-data")
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	value, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
