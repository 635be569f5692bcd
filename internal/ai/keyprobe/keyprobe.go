// Package keyprobe checks user-supplied AI provider keys with a live call.
package keyprobe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/internal/ai/gemini"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var ErrUnsupportedProvider = errors.New("unsupported provider")

// GeneratorFactory builds a generator bound to a specific key
type GeneratorFactory func(ctx context.Context, apiKey string) (ai.ContentGenerator, error)

type Prober struct {
	newGemini     GeneratorFactory
	openAIOptions []option.RequestOption
}

type Option func(*Prober)

// WithGeminiFactory overrides how Gemini generators are created
func WithGeminiFactory(f GeneratorFactory) Option {
	return func(p *Prober) { p.newGemini = f }
}

// WithOpenAIOptions appends client options to every OpenAI probe
func WithOpenAIOptions(opts ...option.RequestOption) Option {
	return func(p *Prober) { p.openAIOptions = append(p.openAIOptions, opts...) }
}

func NewProber(geminiModel string, opts ...Option) *Prober {
	p := &Prober{
		newGemini: func(ctx context.Context, apiKey string) (ai.ContentGenerator, error) {
			return gemini.NewGenerator(ctx, apiKey, geminiModel)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe validates key against provider. A nil error means the key works.
func (p *Prober) Probe(ctx context.Context, provider, key string) error {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ai.ProviderGemini:
		return p.ProbeGemini(ctx, key)
	case ai.ProviderOpenAI:
		return p.ProbeOpenAI(ctx, key)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
}

// ProbeGemini sends a short prompt with the key
func (p *Prober) ProbeGemini(ctx context.Context, key string) error {
	gen, err := p.newGemini(ctx, key)
	if err != nil {
		return err
	}
	_, err = gen.GenerateContent(ctx, "Test message")
	return err
}

// ProbeOpenAI lists models with the key
func (p *Prober) ProbeOpenAI(ctx context.Context, key string) error {
	opts := append([]option.RequestOption{
		option.WithAPIKey(key),
		option.WithMaxRetries(0),
	}, p.openAIOptions...)

	client := openai.NewClient(opts...)
	if _, err := client.Models.List(ctx); err != nil {
		return fmt.Errorf("list openai models: %w", err)
	}
	return nil
}
