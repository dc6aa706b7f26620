package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
)

// PublicNotifications returns only active, unexpired notifications.
func (handler *Handler) PublicNotifications(c *fiber.Ctx) error {
	notifications, err := handler.reference.VisibleNotifications()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(notifications)
}

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := handler.store.Notifications.ListNotifications()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(notifications)
}

type notificationInput struct {
	Title     string     `json:"title" validate:"required"`
	Content   string     `json:"content" validate:"required"`
	Type      string     `json:"type"`
	IsActive  *bool      `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (handler *Handler) CreateNotification(c *fiber.Ctx) error {
	input := notificationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fields := handler.validationFields(input); fields != nil {
		return validationFailed(c, fields)
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = models.NotificationTypeGeneral
	}
	if !models.ValidNotificationType(notificationType) {
		return validationFailed(c, map[string]string{"type": "must be general, important or deadline"})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	notification := models.Notification{
		Title:     input.Title,
		Content:   input.Content,
		Type:      notificationType,
		IsActive:  isActive,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := handler.store.Notifications.CreateNotification(&notification); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

func (handler *Handler) UpdateNotification(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input := notificationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	notification, err := handler.store.Notifications.FindNotificationByID(notificationID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	if input.Title != "" {
		notification.Title = input.Title
	}
	if input.Content != "" {
		notification.Content = input.Content
	}
	if input.Type != "" {
		if !models.ValidNotificationType(input.Type) {
			return validationFailed(c, map[string]string{"type": "must be general, important or deadline"})
		}
		notification.Type = input.Type
	}
	if input.IsActive != nil {
		notification.IsActive = *input.IsActive
	}
	if input.ExpiresAt != nil {
		notification.ExpiresAt = input.ExpiresAt
	}
	notification.UpdatedAt = time.Now()

	if err := handler.store.Notifications.SaveNotification(&notification); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(notification)
}

func (handler *Handler) DeleteNotification(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.store.Notifications.DeleteNotification(notificationID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
