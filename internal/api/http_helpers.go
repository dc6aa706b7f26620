package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError converts domain errors to the documented HTTP
// statuses. Anything unrecognized is logged and collapsed into a stable
// 500 body that leaks nothing.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": validation.Fields,
		})
	}

	switch {
	case errors.Is(err, db.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid username/email or password")
	case errors.Is(err, services.ErrDuplicateIdentity):
		return apiError(c, fiber.StatusConflict, "username or email already registered")
	case errors.Is(err, services.ErrInvalidStatus):
		return apiError(c, fiber.StatusBadRequest, "invalid status")
	case errors.Is(err, services.ErrAlreadyResolved):
		return apiError(c, fiber.StatusBadRequest, "invitation already resolved")
	case errors.Is(err, services.ErrInvitationExpired):
		return apiError(c, fiber.StatusGone, "invitation expired")
	default:
		handler.log.WithError(err).Error("request failed")
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// validationFields runs validator tags and returns the per-field failure
// map, or nil when the input is valid.
func (handler *Handler) validationFields(input any) map[string]string {
	err := handler.validate.Struct(input)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			fields[strings.ToLower(fieldError.Field())] = fieldError.Tag()
		}
	} else {
		fields["input"] = "invalid"
	}
	return fields
}

func validationFailed(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}
