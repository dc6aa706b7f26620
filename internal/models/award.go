package models

import "time"

type ResearchAward struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"not null" json:"description"`
	Eligibility string     `json:"eligibility"`
	Amount      string     `json:"amount,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
