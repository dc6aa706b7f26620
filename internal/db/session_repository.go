package db

import (
	"time"

	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) CreateSession(session *models.Session) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindSessionByID(sessionID string) (models.Session, error) {
	var session models.Session
	if err := repo.database.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return models.Session{}, notFoundTranslated(err)
	}
	return session, nil
}

func (repo *SessionRepository) RenewSession(sessionID string, renewedAt time.Time, expiresAt time.Time) error {
	return repo.database.Model(&models.Session{}).Where("id = ?", sessionID).Updates(map[string]any{
		"renewed_at": renewedAt,
		"expires_at": expiresAt,
	}).Error
}

func (repo *SessionRepository) DeleteSession(sessionID string) error {
	// Idempotent: deleting an absent session is not an error.
	return repo.database.Where("id = ?", sessionID).Delete(&models.Session{}).Error
}

func (repo *SessionRepository) PurgeExpiredSessions(now time.Time) (int64, error) {
	result := repo.database.Where("expires_at < ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
