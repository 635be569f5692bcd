package accountapi

import (
	"github.com/Abraxas-365/careersync/careers/account"
	"github.com/Abraxas-365/careersync/careers/account/accountsrv"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for user settings
type Handlers struct {
	service *accountsrv.Service
}

// NewHandlers creates a new user settings handlers instance
func NewHandlers(service *accountsrv.Service) *Handlers {
	return &Handlers{service: service}
}

// GetProfile returns the stored or default profile
// GET /api/user/profile
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.Context(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateProfile saves the caller's profile
// PUT /api/user/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	var req account.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Context(), callerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(account.ProfileResponse{Profile: profile})
}

// GetAPIKeys returns the caller's keys masked
// GET /api/user/api-keys
func (h *Handlers) GetAPIKeys(c *fiber.Ctx) error {
	keys, err := h.service.GetMaskedAPIKeys(c.Context(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(keys)
}

// UpdateAPIKeys stores the caller's keys encrypted
// PUT /api/user/api-keys
func (h *Handlers) UpdateAPIKeys(c *fiber.Ctx) error {
	var req account.APIKeysRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.UpdateAPIKeys(c.Context(), callerID(c), req); err != nil {
		return err
	}
	return c.JSON(account.MessageResponse{Message: "API keys updated successfully"})
}

// TestAPIKey checks a provider key with a live call
// POST /api/user/test-api-key
func (h *Handlers) TestAPIKey(c *fiber.Ctx) error {
	var req account.TestKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(account.KeyTestResult{Valid: false, Message: "Invalid request data"})
	}

	result := h.service.TestAPIKey(c.Context(), req)
	if !result.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.JSON(result)
}

// GET /api/user/notifications
func (h *Handlers) GetNotifications(c *fiber.Ctx) error {
	settings, err := h.service.GetNotificationSettings(c.Context(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

// PUT /api/user/notifications
func (h *Handlers) UpdateNotifications(c *fiber.Ctx) error {
	var req account.NotificationsRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	settings, err := h.service.UpdateNotificationSettings(c.Context(), callerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(account.NotificationsResponse{Settings: settings})
}

func callerID(c *fiber.Ctx) kernel.UserID {
	if userID, ok := auth.GetUserID(c); ok {
		return userID
	}
	return kernel.DemoUserID
}

// RegisterRoutes registers all user settings routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware, aiLimits ...fiber.Handler) {
	api := app.Group("/api/user", authMiddleware.Optional())

	api.Get("/profile", handlers.GetProfile)
	api.Put("/profile", handlers.UpdateProfile)

	api.Get("/api-keys", handlers.GetAPIKeys)
	api.Put("/api-keys", handlers.UpdateAPIKeys)

	probe := make([]fiber.Handler, 0, len(aiLimits)+1)
	probe = append(probe, aiLimits...)
	api.Post("/test-api-key", append(probe, handlers.TestAPIKey)...)

	api.Get("/notifications", handlers.GetNotifications)
	api.Put("/notifications", handlers.UpdateNotifications)
}
