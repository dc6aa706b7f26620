package models

import "time"

type CommitteeMember struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null" json:"role"`
	Institution  string    `json:"institution"`
	Country      string    `json:"country"`
	Category     string    `gorm:"not null;index" json:"category"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	ProfileURL   string    `json:"profile_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
