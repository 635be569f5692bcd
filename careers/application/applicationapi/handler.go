package applicationapi

import (
	"github.com/Abraxas-365/careersync/careers/application"
	"github.com/Abraxas-365/careersync/careers/application/applicationsrv"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job application tracking
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListApplications returns the caller's applications
// GET /api/jobs
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	apps, err := h.service.ListApplications(c.Context(), callerID(c))
	if err != nil {
		return err
	}

	return c.JSON(application.ListApplicationsResponse{Applications: apps})
}

// CreateApplication creates a new application
// POST /api/jobs
func (h *Handlers) CreateApplication(c *fiber.Ctx) error {
	var req application.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.CreateApplication(c.Context(), callerID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(application.ApplicationResponse{Application: app})
}

// UpdateApplication replaces an application
// PUT /api/jobs/:id
func (h *Handlers) UpdateApplication(c *fiber.Ctx) error {
	id := kernel.ApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.UpdateApplication(c.Context(), callerID(c), id, req)
	if err != nil {
		return err
	}

	return c.JSON(application.ApplicationResponse{Application: app})
}

// DeleteApplication deletes an application
// DELETE /api/jobs/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	id := kernel.ApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteApplication(c.Context(), callerID(c), id); err != nil {
		return err
	}

	return c.JSON(application.MessageResponse{Message: "Application deleted successfully"})
}

// GetAnalytics returns dashboard aggregates
// GET /api/jobs/analytics?range=3months|6months|1year|all
func (h *Handlers) GetAnalytics(c *fiber.Ctx) error {
	analytics, err := h.service.GetAnalytics(c.Context(), callerID(c), c.Query("range"))
	if err != nil {
		return err
	}

	return c.JSON(analytics)
}

// GetStats returns status counts and monthly trends
// GET /api/jobs/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context(), callerID(c))
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

func callerID(c *fiber.Ctx) kernel.UserID {
	if userID, ok := auth.GetUserID(c); ok {
		return userID
	}
	return kernel.DemoUserID
}

// RegisterRoutes registers all job application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/jobs", authMiddleware.Optional())

	api.Get("/analytics", handlers.GetAnalytics)
	api.Get("/stats", handlers.GetStats)

	api.Get("/", handlers.ListApplications)
	api.Post("/", handlers.CreateApplication)
	api.Put("/:id", handlers.UpdateApplication)
	api.Delete("/:id", handlers.DeleteApplication)
}
