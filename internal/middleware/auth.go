package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fathima-sithara/auth-service/internal/models"
	"github.com/fathima-sithara/auth-service/internal/services"
)

const userLocalKey = "auth_user"

// RequireAuth validates the inbound session cookie, resolves the user and
// attaches it to the request context. On any failure the chain is
// short-circuited and the downstream handler never runs.
func RequireAuth(svc services.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Authenticate(c.Context(), c.Cookies(cookieName))
		if err != nil {
			return err
		}
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// AuthUser returns the user attached by RequireAuth, or nil on an
// unprotected route.
func AuthUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
