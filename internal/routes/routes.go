package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/fathima-sithara/auth-service/internal/handlers"
	"github.com/fathima-sithara/auth-service/internal/metrics"
)

// Setup wires the route table. requireAuth gates the protected routes;
// loginLimiter, when non-nil, throttles login attempts.
func Setup(app *fiber.App, h *handlers.Handler, requireAuth fiber.Handler, loginLimiter fiber.Handler) {
	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	if loginLimiter != nil {
		auth.Post("/login", loginLimiter, h.Login)
	} else {
		auth.Post("/login", h.Login)
	}
	auth.Post("/logout", h.Logout)

	app.Put("/profile", requireAuth, h.UpdateProfile)
	app.Get("/dashboard", requireAuth, h.Dashboard)

	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
