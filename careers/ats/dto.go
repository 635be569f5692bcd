package ats

import (
	"github.com/Abraxas-365/careersync/careers/resume"
	"github.com/Abraxas-365/careersync/internal/textract"
)

// AnalyzeRequest carries exactly one resume source. Precedence is the saved
// resume, then structured ResumeData, then the uploaded Document.
type AnalyzeRequest struct {
	JobDescription string
	Document       *textract.Document
	ResumeData     resume.Content
	UseSavedResume bool
}

// AnalyzeResponse - DTO for POST /api/ats/analyze
type AnalyzeResponse struct {
	Success  bool     `json:"success"`
	Analysis Analysis `json:"analysis"`
	Message  string   `json:"message"`
}

// TipsResponse - DTO for GET /api/ats/tips
type TipsResponse struct {
	Success bool          `json:"success"`
	Tips    []TipCategory `json:"tips"`
}
