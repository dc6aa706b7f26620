package services

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
	"github.com/symposiahq/symposia/internal/security"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.NewMemoryStore()
	if err != nil {
		t.Fatalf("build memory store: %v", err)
	}
	return store
}

func seedUser(t *testing.T, store *db.Store, username string, role string) models.User {
	t.Helper()
	passwordHash, err := security.HashPassword("secret-pass-1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := store.Users.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// mailRecorder satisfies both notifier ports with synchronous recording.
type mailRecorder struct {
	submitted     []models.Abstract
	statusChanges []models.Abstract
	created       []models.Invitation
	resolved      []models.Invitation
	recipients    []models.User
}

func (recorder *mailRecorder) AbstractSubmitted(recipient models.User, abstract models.Abstract) {
	recorder.recipients = append(recorder.recipients, recipient)
	recorder.submitted = append(recorder.submitted, abstract)
}

func (recorder *mailRecorder) AbstractStatusChanged(recipient models.User, abstract models.Abstract) {
	recorder.recipients = append(recorder.recipients, recipient)
	recorder.statusChanges = append(recorder.statusChanges, abstract)
}

func (recorder *mailRecorder) InvitationCreated(invitation models.Invitation) {
	recorder.created = append(recorder.created, invitation)
}

func (recorder *mailRecorder) InvitationResolved(sender models.User, invitation models.Invitation) {
	recorder.recipients = append(recorder.recipients, sender)
	recorder.resolved = append(recorder.resolved, invitation)
}

type fileRecorder struct {
	removed []string
}

func (recorder *fileRecorder) Remove(fileURL string) error {
	recorder.removed = append(recorder.removed, fileURL)
	return nil
}
