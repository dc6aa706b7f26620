package models

import "time"

// SessionLifetime is counted from the last renewal, not from creation.
const SessionLifetime = 30 * 24 * time.Hour

type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	RenewedAt time.Time `gorm:"not null" json:"renewed_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

func (session *Session) Expired(now time.Time) bool {
	return now.After(session.ExpiresAt)
}
