package openaichat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are a career assistant for resumes, ATS analysis and cover letters. Follow the output format requested in the user message exactly.`

// Generator answers prompts through OpenAI chat completions
type Generator struct {
	client    *openai.Client
	modelName string
}

var _ ai.ContentGenerator = (*Generator)(nil)

// NewGenerator creates a chat generator. Extra options are appended after the key.
func NewGenerator(apiKey, model string, opts ...option.RequestOption) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &Generator{
		client:    &client,
		modelName: model,
	}, nil
}

// GenerateContent sends prompt as the user message and returns the first choice
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(g.modelName),
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("openai returned empty response")
	}
	return content, nil
}

func (g *Generator) Model() string {
	return g.modelName
}
