package resumeapi

import (
	"fmt"
	"mime/multipart"

	"github.com/Abraxas-365/careersync/careers/resume"
	"github.com/Abraxas-365/careersync/careers/resume/resumesrv"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for resume operations
type Handlers struct {
	service *resumesrv.Service
}

// NewHandlers creates a new resume handlers instance
func NewHandlers(service *resumesrv.Service) *Handlers {
	return &Handlers{service: service}
}

// ParseResume structures an uploaded PDF or Word resume
// POST /api/resume/parse
func (h *Handlers) ParseResume(c *fiber.Ctx) error {
	doc, err := resumesrv.ReadUpload(formFile(c, "resume"))
	if err != nil {
		return err
	}

	content, err := h.service.ParseResume(c.Context(), callerID(c), doc)
	if err != nil {
		return err
	}

	return c.JSON(resume.ResumeDataResponse{
		Success:    true,
		ResumeData: content,
		Message:    "Resume parsed successfully",
	})
}

// TailorResume adapts resume content to a job description
// POST /api/resume/tailor
func (h *Handlers) TailorResume(c *fiber.Ctx) error {
	var req resume.TailorRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	content, err := h.service.TailorResume(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resume.ResumeDataResponse{
		Success:    true,
		ResumeData: content,
		Message:    "Resume tailored successfully",
	})
}

// SaveResume stores the caller's resume
// POST /api/resume/save
func (h *Handlers) SaveResume(c *fiber.Ctx) error {
	var req resume.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.SaveResume(c.Context(), callerID(c), req.ResumeData); err != nil {
		return err
	}

	return c.JSON(resume.SaveResponse{Success: true, Message: "Resume saved successfully"})
}

// GetResume returns the caller's saved resume, or null
// GET /api/resume/get
func (h *Handlers) GetResume(c *fiber.Ctx) error {
	r, err := h.service.GetResume(c.Context(), callerID(c))
	if err != nil {
		return err
	}

	return c.JSON(resume.GetResponse{Success: true, Resume: r})
}

// DownloadResume renders resume content as an HTML or PDF attachment
// POST /api/resume/download?format=html|pdf
func (h *Handlers) DownloadResume(c *fiber.Ctx) error {
	var req resume.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	download, err := h.service.Download(c.Context(), req.ResumeData, resume.ParseFormat(c.Query("format")))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, download.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, download.Filename))
	return c.Send(download.Body)
}

func callerID(c *fiber.Ctx) kernel.UserID {
	userID, _ := auth.GetUserID(c)
	return userID
}

// formFile returns the named upload or nil when the request carries none
func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

// RegisterRoutes registers all resume routes. Every route requires a token.
// aiLimits run in front of the routes that call the model.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware, aiLimits ...fiber.Handler) {
	api := app.Group("/api/resume", authMiddleware.Authenticate())

	api.Post("/parse", chain(aiLimits, handlers.ParseResume)...)
	api.Post("/tailor", chain(aiLimits, handlers.TailorResume)...)
	api.Post("/save", handlers.SaveResume)
	api.Get("/get", handlers.GetResume)
	api.Post("/download", handlers.DownloadResume)
}

func chain(middleware []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middleware)+1)
	out = append(out, middleware...)
	return append(out, handler)
}
