package models

import "time"

const (
	InvitationTypeAccount    = "account"
	InvitationTypeAttendance = "attendance"
)

const DefaultInvitationValidity = 14 * 24 * time.Hour

type Invitation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"not null;index" json:"email"`
	Name        string    `gorm:"not null" json:"name"`
	Token       string    `gorm:"uniqueIndex;not null" json:"-"`
	Role        string    `gorm:"not null;default:user" json:"role"`
	Type        string    `gorm:"not null" json:"type"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	Message     string    `json:"message,omitempty"`
	Institution string    `json:"institution,omitempty"`
	Position    string    `json:"position,omitempty"`
	SenderID    uint      `gorm:"not null;index" json:"sender_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	ExpiresAt   time.Time `gorm:"not null;index" json:"expires_at"`
}

func (invitation *Invitation) Expired(now time.Time) bool {
	return now.After(invitation.ExpiresAt)
}

func ValidInvitationType(invitationType string) bool {
	return invitationType == InvitationTypeAccount || invitationType == InvitationTypeAttendance
}
