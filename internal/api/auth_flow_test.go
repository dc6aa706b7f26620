package api

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/models"
)

func TestRegisterIssuesSessionAndReturnsUser(t *testing.T) {
	env := newTestEnv(t)

	user, cookie := registerUser(t, env, "alice")
	if user.Username != "alice" {
		t.Fatalf("expected username alice, got %q", user.Username)
	}
	if user.Role != models.RoleUser {
		t.Fatalf("expected user role, got %q", user.Role)
	}

	request := jsonRequest(t, http.MethodGet, "/api/user", nil)
	request.Header.Set("Cookie", cookie)
	response := env.do(t, request)
	requireStatus(t, response, http.StatusOK)

	var current models.User
	decodeBody(t, response, &current)
	if current.ID != user.ID {
		t.Fatalf("expected current user %d, got %d", user.ID, current.ID)
	}
}

func TestRegisterRejectsDuplicateIdentity(t *testing.T) {
	env := newTestEnv(t)
	registerUser(t, env, "alice")

	response := env.do(t, jsonRequest(t, http.MethodPost, "/api/register", fiber.Map{
		"username":   "alice",
		"email":      "other@example.com",
		"password":   "correct horse battery",
		"first_name": "Test",
		"last_name":  "User",
	}))
	requireStatus(t, response, http.StatusConflict)
}

func TestRegisterValidatesInput(t *testing.T) {
	env := newTestEnv(t)

	response := env.do(t, jsonRequest(t, http.MethodPost, "/api/register", fiber.Map{
		"username": "al",
		"email":    "not-an-email",
		"password": "short",
	}))
	requireStatus(t, response, http.StatusBadRequest)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, response, &body)
	for _, field := range []string{"username", "email", "password", "firstname", "lastname"} {
		if _, ok := body.Fields[field]; !ok {
			t.Fatalf("expected %q in validation fields, got %v", field, body.Fields)
		}
	}
}

func TestLoginAcceptsUsernameOrEmailIdentifier(t *testing.T) {
	env := newTestEnv(t)
	user, _ := registerUser(t, env, "alice")

	for _, identifier := range []string{"alice", "alice@example.com"} {
		response := env.do(t, jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
			"identifier": identifier,
			"password":   "correct horse battery",
		}))
		requireStatus(t, response, http.StatusOK)

		var loggedIn models.User
		decodeBody(t, response, &loggedIn)
		if loggedIn.ID != user.ID {
			t.Fatalf("identifier %q resolved to user %d, want %d", identifier, loggedIn.ID, user.ID)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	registerUser(t, env, "alice")

	response := env.do(t, jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
		"identifier": "alice",
		"password":   "not the password",
	}))
	requireStatus(t, response, http.StatusUnauthorized)

	response = env.do(t, jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
		"identifier": "nobody",
		"password":   "whatever",
	}))
	requireStatus(t, response, http.StatusUnauthorized)
}

func TestLogoutIsIdempotentAndKillsSession(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	logout := jsonRequest(t, http.MethodPost, "/api/logout", nil)
	logout.Header.Set("Cookie", cookie)
	requireStatus(t, env.do(t, logout), http.StatusOK)

	// Repeating with the same dead cookie still succeeds.
	again := jsonRequest(t, http.MethodPost, "/api/logout", nil)
	again.Header.Set("Cookie", cookie)
	requireStatus(t, env.do(t, again), http.StatusOK)

	// And without any cookie at all.
	requireStatus(t, env.do(t, jsonRequest(t, http.MethodPost, "/api/logout", nil)), http.StatusOK)

	check := jsonRequest(t, http.MethodGet, "/api/user", nil)
	check.Header.Set("Cookie", cookie)
	requireStatus(t, env.do(t, check), http.StatusUnauthorized)
}

func TestSessionSurvivesHandlerRestart(t *testing.T) {
	env := newTestEnv(t)
	user, cookie := registerUser(t, env, "alice")

	// A fresh handler over the same store and secret, as after a
	// process restart, must still accept the cookie.
	log := logrus.New()
	log.SetOutput(io.Discard)
	restarted, err := NewHandler(env.store, env.notifier, log, Options{
		SecretKey: testSecretKey,
		UploadDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("rebuild handler: %v", err)
	}
	app := fiber.New()
	RegisterRoutes(app, restarted)

	request := jsonRequest(t, http.MethodGet, "/api/user", nil)
	request.Header.Set("Cookie", cookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()
	requireStatus(t, response, http.StatusOK)

	var current models.User
	decodeBody(t, response, &current)
	if current.ID != user.ID {
		t.Fatalf("expected user %d after restart, got %d", user.ID, current.ID)
	}
}

func TestTamperedSessionCookieIsRejected(t *testing.T) {
	env := newTestEnv(t)
	registerUser(t, env, "alice")

	request := jsonRequest(t, http.MethodGet, "/api/user", nil)
	request.Header.Set("Cookie", sessionCookieName+"=not-a-signed-token")
	requireStatus(t, env.do(t, request), http.StatusUnauthorized)
}

func TestRenewalDueSessionGetsFreshCookie(t *testing.T) {
	env := newTestEnv(t)
	user, _ := registerUser(t, env, "alice")

	// Session issued weeks ago and last renewed two days back, so the
	// next authenticated request must slide both the row and the cookie.
	issuedAt := time.Now().Add(-25 * 24 * time.Hour)
	oldExpiry := time.Now().Add(5 * 24 * time.Hour)
	session := models.Session{
		ID:        "long-lived-session",
		UserID:    user.ID,
		CreatedAt: issuedAt,
		RenewedAt: time.Now().Add(-48 * time.Hour),
		ExpiresAt: oldExpiry,
	}
	if err := env.store.Sessions.CreateSession(&session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	request := jsonRequest(t, http.MethodGet, "/api/user", nil)
	request.Header.Set("Cookie", signedSessionCookie(t, session.ID, issuedAt))
	response := env.do(t, request)
	requireStatus(t, response, http.StatusOK)

	var refreshed *http.Cookie
	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName {
			refreshed = cookie
		}
	}
	if refreshed == nil || refreshed.Value == "" {
		t.Fatal("expected a re-issued session cookie on renewal")
	}
	if refreshed.Expires.Before(time.Now().Add(29 * 24 * time.Hour)) {
		t.Fatalf("expected refreshed cookie expiry about 30 days out, got %v", refreshed.Expires)
	}

	reloaded, err := env.store.Sessions.FindSessionByID(session.ID)
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if !reloaded.ExpiresAt.After(oldExpiry) {
		t.Fatalf("expected stored expiry pushed past %v, got %v", oldExpiry, reloaded.ExpiresAt)
	}
}

func TestFreshSessionKeepsExistingCookie(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := registerUser(t, env, "alice")

	request := jsonRequest(t, http.MethodGet, "/api/user", nil)
	request.Header.Set("Cookie", cookie)
	response := env.do(t, request)
	requireStatus(t, response, http.StatusOK)

	for _, issued := range response.Cookies() {
		if issued.Name == sessionCookieName {
			t.Fatalf("recently renewed session should not re-issue its cookie, got %q", issued.Value)
		}
	}
}
