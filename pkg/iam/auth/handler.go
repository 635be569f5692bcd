package auth

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

type GoogleLoginRequest struct {
	Code string `json:"code"`
}

// GoogleLogin exchanges a Google authorization code for a session token
// POST /api/auth/google
func (h *Handlers) GoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrCodeRequired().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.LoginWithGoogle(c.Context(), req.Code)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me returns the identity of the presented token
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	claims, ok := GetClaims(c)
	if !ok {
		return ErrMissingToken()
	}

	return c.JSON(fiber.Map{
		"user": claims.User(),
	})
}

// RegisterRoutes registers auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, mw *TokenMiddleware) {
	api := app.Group("/api/auth")

	api.Post("/google", handlers.GoogleLogin)
	api.Get("/me", mw.Authenticate(), handlers.Me)
}
