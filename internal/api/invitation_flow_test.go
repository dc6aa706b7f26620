package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
)

func createAttendanceInvitation(t *testing.T, env *testEnv, adminCookie string, email string) models.Invitation {
	t.Helper()
	request := jsonRequest(t, http.MethodPost, "/api/invitations", fiber.Map{
		"email": email,
		"name":  "Prof. Guest",
		"type":  models.InvitationTypeAttendance,
	})
	request.Header.Set("Cookie", adminCookie)
	response := env.do(t, request)
	requireStatus(t, response, http.StatusCreated)

	var created models.Invitation
	decodeBody(t, response, &created)

	// The token never leaves the server in JSON; read it from the store
	// the way the emailed deep link carries it.
	stored, err := env.store.Invitations.ListInvitations()
	if err != nil {
		t.Fatalf("list invitations: %v", err)
	}
	for _, invitation := range stored {
		if invitation.ID == created.ID {
			return invitation
		}
	}
	t.Fatalf("created invitation %d not found in store", created.ID)
	return models.Invitation{}
}

func TestInvitationCreationRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	request := jsonRequest(t, http.MethodPost, "/api/invitations", fiber.Map{
		"email": "guest@example.com",
		"name":  "Guest",
		"type":  models.InvitationTypeAttendance,
	})
	request.Header.Set("Cookie", cookie)
	requireStatus(t, env.do(t, request), http.StatusForbidden)
}

func TestInvitationTokenIsNeverSerialized(t *testing.T) {
	env := newTestEnv(t)
	_, adminCookie := registerAdmin(t, env, "chair")

	request := jsonRequest(t, http.MethodPost, "/api/invitations", fiber.Map{
		"email": "guest@example.com",
		"name":  "Guest",
		"type":  models.InvitationTypeAttendance,
	})
	request.Header.Set("Cookie", adminCookie)
	response := env.do(t, request)
	requireStatus(t, response, http.StatusCreated)

	var raw map[string]any
	decodeBody(t, response, &raw)
	if _, leaked := raw["token"]; leaked {
		t.Fatal("invitation token leaked into JSON response")
	}
}

func TestInvitationEmailCarriesDeepLink(t *testing.T) {
	env := newTestEnv(t)
	_, adminCookie := registerAdmin(t, env, "chair")

	invitation := createAttendanceInvitation(t, env, adminCookie, "guest@example.com")

	env.notifier.Drain()
	messages := env.sender.sent()
	found := false
	for _, message := range messages {
		if message.To == "guest@example.com" && strings.Contains(message.Body, "token="+invitation.Token) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected invitation email with tokenized deep link")
	}
}

func TestAttendanceInvitationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, adminCookie := registerAdmin(t, env, "chair")

	invitation := createAttendanceInvitation(t, env, adminCookie, "guest@example.com")

	// Anyone holding the token can verify its state without a session.
	verify := jsonRequest(t, http.MethodGet, "/api/invitations/verify?token="+invitation.Token, nil)
	response := env.do(t, verify)
	requireStatus(t, response, http.StatusOK)

	var pending models.Invitation
	decodeBody(t, response, &pending)
	if pending.Status != models.StatusPending {
		t.Fatalf("expected pending, got %q", pending.Status)
	}

	accept := jsonRequest(t, http.MethodPost, "/api/invitations/attendance-response", fiber.Map{
		"token":       invitation.Token,
		"accept":      true,
		"institution": "Example University",
		"position":    "Professor",
	})
	response = env.do(t, accept)
	requireStatus(t, response, http.StatusOK)

	var accepted models.Invitation
	decodeBody(t, response, &accepted)
	if accepted.Status != models.StatusAccepted {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}
	if accepted.Institution != "Example University" {
		t.Fatalf("expected institution recorded, got %q", accepted.Institution)
	}

	// Acting on the same token twice fails cleanly.
	retry := jsonRequest(t, http.MethodPost, "/api/invitations/attendance-response", fiber.Map{
		"token":  invitation.Token,
		"accept": false,
	})
	requireStatus(t, env.do(t, retry), http.StatusBadRequest)
}

func TestResolveByTokenRouteRejectsInvitation(t *testing.T) {
	env := newTestEnv(t)
	_, adminCookie := registerAdmin(t, env, "chair")

	invitation := createAttendanceInvitation(t, env, adminCookie, "guest@example.com")

	request := jsonRequest(t, http.MethodPut, "/api/invitations/"+invitation.Token+"/status", fiber.Map{
		"accept": false,
	})
	response := env.do(t, request)
	requireStatus(t, response, http.StatusOK)

	var rejected models.Invitation
	decodeBody(t, response, &rejected)
	if rejected.Status != models.StatusRejected {
		t.Fatalf("expected rejected, got %q", rejected.Status)
	}
}

func TestExpiredInvitationReportsGone(t *testing.T) {
	env := newTestEnv(t)
	registerAdmin(t, env, "chair")
	admin, err := env.store.Users.FindUserByUsername("chair")
	if err != nil {
		t.Fatalf("load admin: %v", err)
	}

	expired := models.Invitation{
		Email:     "late@example.com",
		Name:      "Late Guest",
		Token:     strings.Repeat("ab", 32),
		Role:      models.RoleUser,
		Type:      models.InvitationTypeAttendance,
		Status:    models.StatusPending,
		SenderID:  admin.ID,
		CreatedAt: time.Now().Add(-20 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-6 * 24 * time.Hour),
	}
	if err := env.store.Invitations.CreateInvitation(&expired); err != nil {
		t.Fatalf("seed invitation: %v", err)
	}

	request := jsonRequest(t, http.MethodPost, "/api/invitations/attendance-response", fiber.Map{
		"token":  expired.Token,
		"accept": true,
	})
	requireStatus(t, env.do(t, request), http.StatusGone)
}

func TestUnknownInvitationTokenReportsNotFound(t *testing.T) {
	env := newTestEnv(t)

	request := jsonRequest(t, http.MethodGet, "/api/invitations/verify?token=does-not-exist", nil)
	requireStatus(t, env.do(t, request), http.StatusNotFound)
}
