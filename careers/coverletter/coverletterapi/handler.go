package coverletterapi

import (
	"github.com/Abraxas-365/careersync/careers/coverletter"
	"github.com/Abraxas-365/careersync/careers/coverletter/coverlettersrv"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for cover letters
type Handlers struct {
	service *coverlettersrv.Service
}

// NewHandlers creates a new cover letter handlers instance
func NewHandlers(service *coverlettersrv.Service) *Handlers {
	return &Handlers{service: service}
}

// Generate writes a cover letter for a job
// POST /api/cover-letter/generate
func (h *Handlers) Generate(c *fiber.Ctx) error {
	var req coverletter.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return coverletter.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		userID = kernel.DemoUserID
	}

	letter, err := h.service.Generate(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(coverletter.GenerateResponse{
		Success:     true,
		CoverLetter: letter,
		Message:     "Cover letter generated successfully",
	})
}

// GET /api/cover-letter/templates
func (h *Handlers) Templates(c *fiber.Ctx) error {
	return c.JSON(coverletter.TemplatesResponse{Success: true, Templates: coverletter.Templates()})
}

// GET /api/cover-letter/tips
func (h *Handlers) Tips(c *fiber.Ctx) error {
	return c.JSON(coverletter.TipsResponse{Success: true, Tips: coverletter.Tips()})
}

// RegisterRoutes registers the cover letter routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware, aiLimits ...fiber.Handler) {
	api := app.Group("/api/cover-letter", authMiddleware.Optional())

	generate := make([]fiber.Handler, 0, len(aiLimits)+1)
	generate = append(generate, aiLimits...)
	api.Post("/generate", append(generate, handlers.Generate)...)
	api.Get("/templates", handlers.Templates)
	api.Get("/tips", handlers.Tips)
}
