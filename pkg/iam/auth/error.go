package auth

import (
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeCodeRequired          = ErrRegistry.Register("CODE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Authorization code is required")
	CodeCodeExchangeFailed    = ErrRegistry.Register("CODE_EXCHANGE_FAILED", errx.TypeValidation, http.StatusBadRequest, "Failed to exchange code for token")
	CodeUserInfoFailed        = ErrRegistry.Register("USERINFO_FAILED", errx.TypeValidation, http.StatusBadRequest, "Failed to get user info")
	CodeMissingToken          = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Access token required")
	CodeInvalidToken          = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeTokenGenerationFailed = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
)

// Helper functions
func ErrCodeRequired() *errx.Error {
	return ErrRegistry.New(CodeCodeRequired)
}

func ErrCodeExchangeFailed() *errx.Error {
	return ErrRegistry.New(CodeCodeExchangeFailed)
}

func ErrUserInfoFailed() *errx.Error {
	return ErrRegistry.New(CodeUserInfoFailed)
}

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrTokenGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenGenerationFailed)
}
