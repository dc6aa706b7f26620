package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Institution  string    `json:"institution"`
	Role         string    `gorm:"not null;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

type Profile struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	UserID            uint              `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio               string            `json:"bio"`
	Position          string            `json:"position"`
	Department        string            `json:"department"`
	Country           string            `json:"country"`
	IsPresenter       bool              `gorm:"not null;default:false" json:"is_presenter"`
	IsCommitteeMember bool              `gorm:"not null;default:false" json:"is_committee_member"`
	SocialLinks       map[string]string `gorm:"serializer:json" json:"social_links"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
