package coverletter

import (
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("COVER_LETTER")

// Error codes
var (
	CodeMissingFields  = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Missing required fields")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeEmptyLetter    = ErrRegistry.Register("EMPTY_LETTER", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate cover letter")
)

// Helper functions
func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields).
		WithReason("Job title, company name, and personal name are required")
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrEmptyLetter() *errx.Error {
	return ErrRegistry.New(CodeEmptyLetter)
}
