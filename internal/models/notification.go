package models

import "time"

const (
	NotificationTypeGeneral   = "general"
	NotificationTypeImportant = "important"
	NotificationTypeDeadline  = "deadline"
)

type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `gorm:"not null" json:"content"`
	Type      string     `gorm:"not null;default:general" json:"type"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Visible reports whether the notification may appear on public pages.
func (notification *Notification) Visible(now time.Time) bool {
	if !notification.IsActive {
		return false
	}
	return notification.ExpiresAt == nil || notification.ExpiresAt.After(now)
}

func ValidNotificationType(notificationType string) bool {
	switch notificationType {
	case NotificationTypeGeneral, NotificationTypeImportant, NotificationTypeDeadline:
		return true
	default:
		return false
	}
}
