package db

import (
	"errors"
	"time"

	"github.com/symposiahq/symposia/internal/models"
)

// ErrNotFound is returned by every store implementation for missing
// records so callers never depend on driver-specific sentinels.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateToken mirrors the unique constraint on invitation tokens
// for stores without a real database underneath.
var ErrDuplicateToken = errors.New("invitation token already exists")

type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByID(userID uint) (models.User, error)
	FindUserByUsername(username string) (models.User, error)
	FindUserByEmail(email string) (models.User, error)
	IdentityTaken(username string, email string) (bool, error)
	ListUsers() ([]models.User, error)
	UpdateUserRole(userID uint, role string) error
}

type ProfileStore interface {
	CreateProfile(profile *models.Profile) error
	FindProfileByUserID(userID uint) (models.Profile, error)
	SaveProfile(profile *models.Profile) error
}

type AbstractStore interface {
	CreateAbstract(abstract *models.Abstract) error
	FindAbstractByID(abstractID uint) (models.Abstract, error)
	ListAbstractsByUser(userID uint) ([]models.Abstract, error)
	ListAbstracts() ([]models.Abstract, error)
	SaveAbstract(abstract *models.Abstract) error
	DeleteAbstract(abstractID uint) error
}

type InvitationStore interface {
	CreateInvitation(invitation *models.Invitation) error
	FindInvitationByToken(token string) (models.Invitation, error)
	ListInvitations() ([]models.Invitation, error)
	// ResolveInvitation atomically moves the invitation out of pending.
	// It reports false when another caller already resolved it.
	ResolveInvitation(token string, status string, institution string, position string) (bool, error)
}

type NotificationStore interface {
	CreateNotification(notification *models.Notification) error
	FindNotificationByID(notificationID uint) (models.Notification, error)
	ListNotifications() ([]models.Notification, error)
	ListVisibleNotifications(now time.Time) ([]models.Notification, error)
	SaveNotification(notification *models.Notification) error
	DeleteNotification(notificationID uint) error
}

type CommitteeStore interface {
	CreateCommitteeMember(member *models.CommitteeMember) error
	FindCommitteeMemberByID(memberID uint) (models.CommitteeMember, error)
	ListCommitteeMembers(category string) ([]models.CommitteeMember, error)
	SaveCommitteeMember(member *models.CommitteeMember) error
	DeleteCommitteeMember(memberID uint) error
}

type AwardStore interface {
	CreateAward(award *models.ResearchAward) error
	FindAwardByID(awardID uint) (models.ResearchAward, error)
	ListAwards(activeOnly bool) ([]models.ResearchAward, error)
	SaveAward(award *models.ResearchAward) error
	DeleteAward(awardID uint) error
}

type SessionStore interface {
	CreateSession(session *models.Session) error
	FindSessionByID(sessionID string) (models.Session, error)
	RenewSession(sessionID string, renewedAt time.Time, expiresAt time.Time) error
	DeleteSession(sessionID string) error
	PurgeExpiredSessions(now time.Time) (int64, error)
}

// Store aggregates the per-entity contracts. The SQLite-backed and the
// in-memory implementations are interchangeable; exactly one is selected
// by configuration at startup.
type Store struct {
	Users         UserStore
	Profiles      ProfileStore
	Abstracts     AbstractStore
	Invitations   InvitationStore
	Notifications NotificationStore
	Committee     CommitteeStore
	Awards        AwardStore
	Sessions      SessionStore
}
