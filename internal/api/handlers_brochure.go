package api

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// DownloadBrochure streams the published conference brochure, or 404
// when none has been uploaded yet.
func (handler *Handler) DownloadBrochure(c *fiber.Ctx) error {
	path := handler.uploads.BrochurePath()
	if _, err := os.Stat(path); err != nil {
		return apiError(c, fiber.StatusNotFound, "brochure not available")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="brochure.pdf"`)
	return c.SendFile(path)
}

func (handler *Handler) ReplaceBrochure(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return validationFailed(c, map[string]string{"file": "required"})
	}
	if err := handler.uploads.ReplaceBrochure(c, fileHeader); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.log.WithField("size", fileHeader.Size).Info("brochure replaced")
	return c.JSON(fiber.Map{"ok": true})
}
