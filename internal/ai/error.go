package ai

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/logx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AI")

// Error codes
var (
	CodeUpstreamFailed    = ErrRegistry.Register("UPSTREAM_FAILED", errx.TypeExternal, http.StatusBadGateway, "AI provider request failed")
	CodeMalformedResponse = ErrRegistry.Register("MALFORMED_RESPONSE", errx.TypeInternal, http.StatusInternalServerError, "AI response could not be parsed")
)

func ErrUpstreamFailed() *errx.Error {
	return ErrRegistry.New(CodeUpstreamFailed)
}

func ErrMalformedResponse() *errx.Error {
	return ErrRegistry.New(CodeMalformedResponse)
}

// Complete runs prompt through gen and maps provider failures to UPSTREAM_FAILED
func Complete(ctx context.Context, gen ContentGenerator, prompt string) (string, error) {
	text, err := gen.GenerateContent(ctx, prompt)
	if err != nil {
		logx.Errorf("AI generation failed: %v", err)
		return "", ErrUpstreamFailed().WithCause(err)
	}
	return text, nil
}

// CompleteJSON runs prompt and decodes the JSON object of the reply into v
func CompleteJSON(ctx context.Context, gen ContentGenerator, prompt string, v any) error {
	text, err := Complete(ctx, gen, prompt)
	if err != nil {
		return err
	}

	if err := DecodeJSON(text, v); err != nil {
		logx.Errorf("AI response is not valid JSON: %v (response: %s)", err, logx.TruncateForLog(text, 300))
		return ErrMalformedResponse().WithCause(err)
	}
	return nil
}
