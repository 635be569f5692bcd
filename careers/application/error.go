package application

import (
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeRequiredFields      = ErrRegistry.Register("REQUIRED_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Job title and company name are required")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrRequiredFields() *errx.Error {
	return ErrRegistry.New(CodeRequiredFields)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
