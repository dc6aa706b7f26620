package models

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Author struct {
	Name            string `json:"name"`
	Affiliation     string `json:"affiliation"`
	Email           string `json:"email,omitempty"`
	Category        string `json:"category,omitempty"`
	IsCorresponding bool   `json:"is_corresponding"`
}

type Abstract struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Category    string    `gorm:"not null" json:"category"`
	Content     string    `gorm:"not null" json:"content"`
	Keywords    string    `gorm:"not null" json:"keywords"`
	Authors     []Author  `gorm:"serializer:json" json:"authors"`
	FileURL     string    `json:"file_url,omitempty"`
	ReferenceID string    `gorm:"uniqueIndex;not null" json:"reference_id"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}
