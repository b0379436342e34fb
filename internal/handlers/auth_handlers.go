package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/auth-service/internal/metrics"
	"github.com/fathima-sithara/auth-service/internal/middleware"
	"github.com/fathima-sithara/auth-service/internal/services"
)

type CookieSettings struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	svc    services.AuthService
	cookie CookieSettings
	log    *zap.Logger
}

func NewHandler(svc services.AuthService, cookie CookieSettings, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, cookie: cookie, log: logger}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if _, err := h.svc.Register(c.Context(), in); err != nil {
		metrics.RecordAuthAttempt("register", "failure")
		return err
	}
	metrics.RecordAuthAttempt("register", "success")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	_, token, err := h.svc.Login(c.Context(), in)
	if err != nil {
		metrics.RecordAuthAttempt("login", "failure")
		return err
	}
	metrics.RecordAuthAttempt("login", "success")
	h.setSessionCookie(c, token)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged in successfully"})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if c.Cookies(h.cookie.Name) == "" {
		return services.ErrNoActiveSession
	}
	h.clearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	if user == nil {
		return services.ErrUnauthenticated
	}
	var updates map[string]string
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	updated, err := h.svc.UpdateProfile(c.Context(), user.UUID, updates)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	if user == nil {
		return services.ErrUnauthenticated
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Welcome " + user.Username})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Expires:  time.Now().Add(h.cookie.TTL),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
