package atssrv

import (
	"context"
	"strings"

	"github.com/Abraxas-365/careersync/careers/ats"
	"github.com/Abraxas-365/careersync/careers/resume"
	"github.com/Abraxas-365/careersync/careers/resume/resumesrv"
	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/logx"
)

// ResumeStore is the part of the resume service the analysis needs
type ResumeStore interface {
	GetResume(ctx context.Context, userID kernel.UserID) (*resume.Resume, error)
	RecordATSScore(ctx context.Context, userID kernel.UserID, score int) error
}

// Service scores resumes against job descriptions
type Service struct {
	generator ai.ContentGenerator
	resumes   ResumeStore
}

func NewService(generator ai.ContentGenerator, resumes ResumeStore) *Service {
	return &Service{generator: generator, resumes: resumes}
}

// Analyze resolves the resume text, asks the model for an analysis and, when
// the saved resume was analyzed, stores its overall score.
func (s *Service) Analyze(ctx context.Context, userID kernel.UserID, req ats.AnalyzeRequest) (ats.Analysis, error) {
	text, err := s.resumeText(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, ats.ErrJobDescriptionRequired()
	}

	analysis := ats.Analysis{}
	if err := ai.CompleteJSON(ctx, s.generator, ats.Prompt(text, req.JobDescription), &analysis); err != nil {
		return nil, err
	}
	analysis.Normalize()

	score, scored := analysis.Overall()
	if req.UseSavedResume && scored {
		if err := s.resumes.RecordATSScore(ctx, userID, score); err != nil {
			logx.Warnf("Failed to store ATS score for user %s: %v", userID, err)
		}
	} else if req.UseSavedResume {
		logx.Warnf("ATS analysis for user %s has no numeric overall score, saved score unchanged", userID)
	}

	logx.Infof("ATS analysis for user %s scored %d (numeric=%t)", userID, score, scored)
	return analysis, nil
}

func (s *Service) resumeText(ctx context.Context, userID kernel.UserID, req ats.AnalyzeRequest) (string, error) {
	switch {
	case req.UseSavedResume:
		saved, err := s.resumes.GetResume(ctx, userID)
		if err != nil {
			return "", errx.Wrap(err, "failed to load saved resume", errx.TypeInternal)
		}
		if saved == nil || saved.Content.IsEmpty() {
			return "", ats.ErrSavedResumeNotFound()
		}
		return saved.Content.Indent(), nil

	case !req.ResumeData.IsEmpty():
		if !req.ResumeData.IsObject() {
			return "", ats.ErrInvalidResumeData()
		}
		return req.ResumeData.Indent(), nil

	case req.Document == nil:
		return "", ats.ErrNoResume()
	}

	text, err := resumesrv.ExtractDocumentText(req.Document)
	if err != nil {
		if errx.IsCode(err, resume.CodeNoText) {
			return "", ats.ErrNoText()
		}
		return "", err
	}
	return text, nil
}
