package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
)

// Renewal is throttled so a busy session does not write on every request.
const sessionRenewInterval = 24 * time.Hour

type SessionService struct {
	sessions db.SessionStore
	users    db.UserStore
}

func NewSessionService(sessions db.SessionStore, users db.UserStore) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

func (service *SessionService) Create(userID uint) (models.Session, error) {
	now := time.Now()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		RenewedAt: now,
		ExpiresAt: now.Add(models.SessionLifetime),
	}
	if err := service.sessions.CreateSession(&session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Authenticate resolves a session ID to its user, sliding the 30-day
// expiry forward when the session was last renewed over a day ago. The
// renewed flag tells the transport layer to re-issue its cookie so the
// client-side lifetime slides along with the stored row.
func (service *SessionService) Authenticate(sessionID string) (models.User, bool, error) {
	session, err := service.sessions.FindSessionByID(sessionID)
	if err != nil {
		return models.User{}, false, err
	}

	now := time.Now()
	if session.Expired(now) {
		_ = service.sessions.DeleteSession(session.ID)
		return models.User{}, false, ErrSessionExpired
	}

	renewed := false
	if now.Sub(session.RenewedAt) > sessionRenewInterval {
		if err := service.sessions.RenewSession(session.ID, now, now.Add(models.SessionLifetime)); err != nil {
			return models.User{}, false, err
		}
		renewed = true
	}

	user, err := service.users.FindUserByID(session.UserID)
	return user, renewed, err
}

// Destroy is idempotent; destroying an unknown session is a no-op.
func (service *SessionService) Destroy(sessionID string) error {
	return service.sessions.DeleteSession(sessionID)
}
