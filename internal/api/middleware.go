package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/symposiahq/symposia/internal/models"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// RequireAuthenticated resolves the session cookie to a user and attaches
// identity and role to the request.
func (handler *Handler) RequireAuthenticated(c *fiber.Ctx) error {
	sessionID, err := handler.sessionIDFromRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, renewed, err := handler.sessions.Authenticate(sessionID)
	if err != nil {
		handler.clearSessionCookie(c)
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	// A renewed session gets a freshly signed cookie so the client-side
	// lifetime slides forward with the stored row.
	if renewed {
		if err := handler.setSessionCookie(c, models.Session{ID: sessionID}); err != nil {
			handler.log.WithError(err).Warn("failed to re-issue session cookie")
		}
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// RequireAdmin gates a route on the admin role. It must run after
// RequireAuthenticated.
func (handler *Handler) RequireAdmin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if user.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusForbidden, "admin access required")
	}
	return c.Next()
}
