package resume

import (
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes
var (
	CodeResumeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeDataRequired        = ErrRegistry.Register("DATA_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Resume data is required")
	CodeTailorFieldsMissing = ErrRegistry.Register("TAILOR_FIELDS_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Resume data and job description are required")
	CodeNoFile              = ErrRegistry.Register("NO_FILE", errx.TypeValidation, http.StatusBadRequest, "No file uploaded")
	CodeUnsupportedFileType = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Only PDF and DOC files are allowed")
	CodeFileTooLarge        = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File size exceeds the 10MB limit")
	CodeNoText              = ErrRegistry.Register("NO_TEXT", errx.TypeValidation, http.StatusBadRequest, "Could not extract text from resume")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeRenderFailed        = ErrRegistry.Register("RENDER_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate resume download")
)

// Helper functions
func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrDataRequired() *errx.Error {
	return ErrRegistry.New(CodeDataRequired)
}

func ErrTailorFieldsMissing() *errx.Error {
	return ErrRegistry.New(CodeTailorFieldsMissing)
}

func ErrNoFile() *errx.Error {
	return ErrRegistry.New(CodeNoFile)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrNoText() *errx.Error {
	return ErrRegistry.New(CodeNoText)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrRenderFailed() *errx.Error {
	return ErrRegistry.New(CodeRenderFailed)
}
