package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/fathima-sithara/auth-service/internal/config"
	"github.com/fathima-sithara/auth-service/internal/handlers"
	"github.com/fathima-sithara/auth-service/internal/middleware"
	"github.com/fathima-sithara/auth-service/internal/routes"
	"github.com/fathima-sithara/auth-service/internal/services"
)

// New initializes the Fiber application with config, middlewares, and routes.
// All service errors funnel through a single ErrorHandler at this boundary.
func New(cfg *config.Config, h *handlers.Handler, requireAuth fiber.Handler, loginLimiter fiber.Handler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorHandler: errorHandler(logger),
	})

	app.Use(cors.New())
	app.Use(middleware.ZapLogger(logger))

	routes.Setup(app, h, requireAuth, loginLimiter)

	return app
}

// errorHandler translates each error kind to a status and response body.
// Infrastructure errors are logged here and never leak details to the caller.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			ve       *services.ValidationError
			ce       *services.ConflictError
			fiberErr *fiber.Error
		)
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
		case errors.As(err, &ce):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ce.Error()})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email or password"})
		case errors.Is(err, services.ErrNoActiveSession):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No active session to logout"})
		case errors.Is(err, services.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated. Please log in."})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		default:
			logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error. Please try again later."})
		}
	}
}
