package ats

import (
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ATS")

// Error codes
var (
	CodeNoResume               = ErrRegistry.Register("NO_RESUME", errx.TypeValidation, http.StatusBadRequest, "No resume file uploaded")
	CodeJobDescriptionRequired = ErrRegistry.Register("JOB_DESCRIPTION_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Job description is required")
	CodeNoText                 = ErrRegistry.Register("NO_TEXT", errx.TypeValidation, http.StatusBadRequest, "Could not extract text from resume")
	CodeInvalidResumeData      = ErrRegistry.Register("INVALID_RESUME_DATA", errx.TypeValidation, http.StatusBadRequest, "Resume data must be a JSON object")
	CodeSavedResumeNotFound    = ErrRegistry.Register("SAVED_RESUME_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "No saved resume found")
)

// Helper functions
func ErrNoResume() *errx.Error {
	return ErrRegistry.New(CodeNoResume)
}

func ErrJobDescriptionRequired() *errx.Error {
	return ErrRegistry.New(CodeJobDescriptionRequired)
}

func ErrNoText() *errx.Error {
	return ErrRegistry.New(CodeNoText)
}

func ErrInvalidResumeData() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeData)
}

func ErrSavedResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeSavedResumeNotFound)
}
