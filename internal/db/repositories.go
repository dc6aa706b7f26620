package db

import "gorm.io/gorm"

// NewRepositories wires the GORM-backed implementation of every store
// contract against a single database handle.
func NewRepositories(database *gorm.DB) *Store {
	return &Store{
		Users:         NewUserRepository(database),
		Profiles:      NewProfileRepository(database),
		Abstracts:     NewAbstractRepository(database),
		Invitations:   NewInvitationRepository(database),
		Notifications: NewNotificationRepository(database),
		Committee:     NewCommitteeRepository(database),
		Awards:        NewAwardRepository(database),
		Sessions:      NewSessionRepository(database),
	}
}
