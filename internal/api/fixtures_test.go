package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/mail"
	"github.com/symposiahq/symposia/internal/models"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

// recordingSender captures outbound mail so tests can assert delivery
// without a real SMTP server.
type recordingSender struct {
	mu       sync.Mutex
	messages []mail.Message
}

func (sender *recordingSender) Send(message mail.Message) error {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	sender.messages = append(sender.messages, message)
	return nil
}

func (sender *recordingSender) sent() []mail.Message {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	return append([]mail.Message(nil), sender.messages...)
}

type testEnv struct {
	app      *fiber.App
	store    *db.Store
	notifier *mail.Notifier
	sender   *recordingSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "symposia-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("resolve sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	sender := &recordingSender{}
	notifier := mail.NewNotifier(sender, log, "http://localhost:5000")

	store := db.NewRepositories(database)
	handler, err := NewHandler(store, notifier, log, Options{
		SecretKey:    testSecretKey,
		CookieSecure: false,
		UploadDir:    t.TempDir(),
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testEnv{app: app, store: store, notifier: notifier, sender: sender}
}

func uintToPath(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func (env *testEnv) do(t *testing.T, request *http.Request) *http.Response {
	t.Helper()
	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func requireStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(body))
	}
}

func sessionCookie(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

// signedSessionCookie builds a cookie header for an arbitrary session ID,
// letting tests control when the token was issued.
func signedSessionCookie(t *testing.T, sessionID string, issuedAt time.Time) string {
	t.Helper()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(models.SessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}
	return sessionCookieName + "=" + token
}

// registerUser registers through the public endpoint and returns the
// created user plus an authenticated cookie header.
func registerUser(t *testing.T, env *testEnv, username string) (models.User, string) {
	t.Helper()
	response := env.do(t, jsonRequest(t, http.MethodPost, "/api/register", fiber.Map{
		"username":   username,
		"email":      username + "@example.com",
		"password":   "correct horse battery",
		"first_name": "Test",
		"last_name":  "User",
	}))
	requireStatus(t, response, http.StatusCreated)

	cookie := sessionCookie(t, response)
	var user models.User
	decodeBody(t, response, &user)
	return user, cookie
}

// registerAdmin registers a user and promotes it directly in the store.
// The role check runs per request, so the existing cookie stays valid.
func registerAdmin(t *testing.T, env *testEnv, username string) (models.User, string) {
	t.Helper()
	user, cookie := registerUser(t, env, username)
	if err := env.store.Users.UpdateUserRole(user.ID, models.RoleAdmin); err != nil {
		t.Fatalf("promote %s: %v", username, err)
	}
	user.Role = models.RoleAdmin
	return user, cookie
}

func submitAbstract(t *testing.T, env *testEnv, cookie string, title string) models.Abstract {
	t.Helper()
	request := jsonRequest(t, http.MethodPost, "/api/abstracts", fiber.Map{
		"title":    title,
		"category": "Data Science",
		"content":  "A study of things.",
		"keywords": "things, studies",
		"authors": []fiber.Map{
			{"name": "Alice Ree", "affiliation": "Example University", "is_corresponding": true},
		},
	})
	request.Header.Set("Cookie", cookie)
	response := env.do(t, request)
	requireStatus(t, response, http.StatusCreated)

	var abstract models.Abstract
	decodeBody(t, response, &abstract)
	return abstract
}
