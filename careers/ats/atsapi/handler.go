package atsapi

import (
	"strconv"
	"strings"

	"github.com/Abraxas-365/careersync/careers/ats"
	"github.com/Abraxas-365/careersync/careers/ats/atssrv"
	"github.com/Abraxas-365/careersync/careers/resume/resumesrv"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for ATS analysis
type Handlers struct {
	service *atssrv.Service
}

// NewHandlers creates a new ATS handlers instance
func NewHandlers(service *atssrv.Service) *Handlers {
	return &Handlers{service: service}
}

// Analyze scores a resume against a job description
// POST /api/ats/analyze
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	req := ats.AnalyzeRequest{
		JobDescription: c.FormValue("jobDescription"),
	}

	req.UseSavedResume, _ = strconv.ParseBool(c.FormValue("useSavedResume"))
	if req.UseSavedResume {
		if _, ok := auth.GetClaims(c); !ok {
			return auth.ErrMissingToken()
		}
	}

	if raw := strings.TrimSpace(c.FormValue("resumeData")); raw != "" {
		if err := req.ResumeData.UnmarshalJSON([]byte(raw)); err != nil {
			return ats.ErrInvalidResumeData().WithDetail("parse_error", err.Error())
		}
	}

	if !req.UseSavedResume && req.ResumeData.IsEmpty() {
		if fh, err := c.FormFile("resume"); err == nil {
			doc, err := resumesrv.ReadUpload(fh)
			if err != nil {
				return err
			}
			req.Document = doc
		}
	}

	analysis, err := h.service.Analyze(c.Context(), callerID(c), req)
	if err != nil {
		return err
	}

	return c.JSON(ats.AnalyzeResponse{
		Success:  true,
		Analysis: analysis,
		Message:  "ATS analysis completed successfully",
	})
}

// Tips returns static ATS optimization advice
// GET /api/ats/tips
func (h *Handlers) Tips(c *fiber.Ctx) error {
	return c.JSON(ats.TipsResponse{Success: true, Tips: ats.Tips()})
}

func callerID(c *fiber.Ctx) kernel.UserID {
	if userID, ok := auth.GetUserID(c); ok {
		return userID
	}
	return kernel.DemoUserID
}

// RegisterRoutes registers the ATS routes. Analysis of the saved resume needs a token.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware, aiLimits ...fiber.Handler) {
	api := app.Group("/api/ats", authMiddleware.Optional())

	analyze := make([]fiber.Handler, 0, len(aiLimits)+1)
	analyze = append(analyze, aiLimits...)
	api.Post("/analyze", append(analyze, handlers.Analyze)...)
	api.Get("/tips", handlers.Tips)
}
