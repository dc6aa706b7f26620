package db

import (
	"time"

	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) CreateNotification(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) FindNotificationByID(notificationID uint) (models.Notification, error) {
	var notification models.Notification
	if err := repo.database.First(&notification, notificationID).Error; err != nil {
		return models.Notification{}, notFoundTranslated(err)
	}
	return notification, nil
}

func (repo *NotificationRepository) ListNotifications() ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) ListVisibleNotifications(now time.Time) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("is_active = ? AND (expires_at IS NULL OR expires_at > ?)", true, now).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) SaveNotification(notification *models.Notification) error {
	return repo.database.Save(notification).Error
}

func (repo *NotificationRepository) DeleteNotification(notificationID uint) error {
	result := repo.database.Delete(&models.Notification{}, notificationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
