package services

import (
	"errors"
	"testing"
	"time"

	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
)

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, "carol", models.RoleUser)
	service := NewSessionService(store.Sessions, store.Users)

	session, err := service.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected non-empty session id")
	}

	authenticated, renewed, err := service.Authenticate(session.ID)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}
	if renewed {
		t.Fatal("fresh session should not report a renewal")
	}
}

func TestExpiredSessionIsRejectedAndRemoved(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, "carol", models.RoleUser)
	service := NewSessionService(store.Sessions, store.Users)

	session := models.Session{
		ID:        "expired-session",
		UserID:    user.ID,
		CreatedAt: time.Now().Add(-40 * 24 * time.Hour),
		RenewedAt: time.Now().Add(-40 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-10 * 24 * time.Hour),
	}
	if err := store.Sessions.CreateSession(&session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if _, _, err := service.Authenticate(session.ID); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected session expired, got %v", err)
	}
	if _, err := store.Sessions.FindSessionByID(session.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected expired session deleted, got %v", err)
	}
}

func TestStaleSessionSlidesExpiryForward(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, "carol", models.RoleUser)
	service := NewSessionService(store.Sessions, store.Users)

	oldExpiry := time.Now().Add(5 * 24 * time.Hour)
	session := models.Session{
		ID:        "stale-session",
		UserID:    user.ID,
		CreatedAt: time.Now().Add(-25 * 24 * time.Hour),
		RenewedAt: time.Now().Add(-48 * time.Hour),
		ExpiresAt: oldExpiry,
	}
	if err := store.Sessions.CreateSession(&session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	_, renewed, err := service.Authenticate(session.ID)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !renewed {
		t.Fatal("expected stale session to report a renewal")
	}

	reloaded, err := store.Sessions.FindSessionByID(session.ID)
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if !reloaded.ExpiresAt.After(oldExpiry) {
		t.Fatalf("expected expiry pushed past %v, got %v", oldExpiry, reloaded.ExpiresAt)
	}
}

func TestDestroyUnknownSessionIsNoOp(t *testing.T) {
	store := newTestStore(t)
	service := NewSessionService(store.Sessions, store.Users)

	if err := service.Destroy("never-existed"); err != nil {
		t.Fatalf("expected idempotent destroy, got %v", err)
	}
}
