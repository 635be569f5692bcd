package coverlettersrv

import (
	"context"
	"strings"

	"github.com/Abraxas-365/careersync/careers/coverletter"
	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/logx"
)

// Service writes cover letters with the model
type Service struct {
	generator ai.ContentGenerator
}

func NewService(generator ai.ContentGenerator) *Service {
	return &Service{generator: generator}
}

// Generate validates req and returns the model's letter as plain text
func (s *Service) Generate(ctx context.Context, userID kernel.UserID, req coverletter.GenerateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	letter, err := ai.Complete(ctx, s.generator, coverletter.Prompt(req))
	if err != nil {
		return "", err
	}

	letter = strings.TrimSpace(letter)
	if letter == "" {
		return "", coverletter.ErrEmptyLetter()
	}

	logx.Infof("Cover letter generated for user %s (%s at %s, tone %s)",
		userID, req.JobTitle, req.CompanyName, coverletter.ParseTone(req.Tone))
	return letter, nil
}
