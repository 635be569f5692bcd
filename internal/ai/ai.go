// Package ai holds the provider-neutral contract for prompt calls and the
// handling of model replies.
package ai

import "context"

// ContentGenerator is the prompt-in, text-out contract the services depend on
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Provider names accepted by configuration
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)
