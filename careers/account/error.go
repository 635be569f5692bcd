package account

import (
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

// Error codes
var (
	CodeProfileNotFound       = ErrRegistry.Register("PROFILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Profile not found")
	CodeAPIKeysNotFound       = ErrRegistry.Register("API_KEYS_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "API keys not found")
	CodeNotificationsNotFound = ErrRegistry.Register("NOTIFICATIONS_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Notification settings not found")
	CodeInvalidRequest        = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeKeyStorageFailed      = ErrRegistry.Register("KEY_STORAGE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update API keys")
)

// Helper functions
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrAPIKeysNotFound() *errx.Error {
	return ErrRegistry.New(CodeAPIKeysNotFound)
}

func ErrNotificationsNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotificationsNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrKeyStorageFailed() *errx.Error {
	return ErrRegistry.New(CodeKeyStorageFailed)
}
