package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fathima-sithara/auth-service/internal/models"
	"github.com/fathima-sithara/auth-service/internal/repository"
	"github.com/fathima-sithara/auth-service/internal/services"
	"github.com/fathima-sithara/auth-service/internal/utils"
)

const cookieName = "session_token"

func newGatedApp(t *testing.T) (*fiber.App, *utils.SessionManager, repository.UserRepository, *int) {
	t.Helper()

	repo := repository.NewMemoryUserRepo()
	sessions := utils.NewSessionManager("test-secret", time.Hour)
	svc := services.NewAuthService(repo, sessions, 4, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if err == services.ErrUnauthenticated {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated. Please log in."})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
		},
	})

	var handlerCalls int
	app.Get("/protected", RequireAuth(svc, cookieName), func(c *fiber.Ctx) error {
		handlerCalls++
		user := AuthUser(c)
		require.NotNil(t, user)
		return c.JSON(fiber.Map{"message": "Welcome " + user.Username})
	})
	return app, sessions, repo, &handlerCalls
}

func seedUser(t *testing.T, repo repository.UserRepository) *models.User {
	t.Helper()
	user := &models.User{UUID: "uuid-1", Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func doGet(t *testing.T, app *fiber.App, cookie string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRequireAuth_RejectsIdentically(t *testing.T) {
	app, sessions, _, handlerCalls := newGatedApp(t)

	// a well-formed token for a user that does not exist
	orphanToken, err := sessions.Issue("ghost-uuid")
	require.NoError(t, err)

	var bodies []string
	for _, cookie := range []string{"", "malformed.token.value", orphanToken} {
		resp, body := doGet(t, app, cookie)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		bodies = append(bodies, body)
	}

	// absent, malformed and orphaned credentials are indistinguishable
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.Zero(t, *handlerCalls, "downstream handler must never run on failure")
}

func TestRequireAuth_PassesUserDownstream(t *testing.T) {
	app, sessions, repo, handlerCalls := newGatedApp(t)
	user := seedUser(t, repo)

	token, err := sessions.Issue(user.UUID)
	require.NoError(t, err)

	resp, body := doGet(t, app, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Welcome alice")
	assert.Equal(t, 1, *handlerCalls)
}
