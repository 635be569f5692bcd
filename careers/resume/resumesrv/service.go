package resumesrv

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Abraxas-365/careersync/careers/resume"
	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/internal/pdf"
	"github.com/Abraxas-365/careersync/internal/textract"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/fsx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/google/uuid"
)

// Service parses, tailors, stores and renders resumes
type Service struct {
	repo      resume.Repository
	generator ai.ContentGenerator
	files     fsx.FileSystem
	renderer  pdf.Renderer
	now       func() time.Time
}

// NewService creates the resume service. files and renderer are optional:
// without files uploads are not archived, without renderer PDF downloads fall back to HTML.
func NewService(repo resume.Repository, generator ai.ContentGenerator, files fsx.FileSystem, renderer pdf.Renderer) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		files:     files,
		renderer:  renderer,
		now:       time.Now,
	}
}

// ============================================================================
// AI operations
// ============================================================================

// ParseResume extracts the text of an uploaded document and has the model structure it
func (s *Service) ParseResume(ctx context.Context, userID kernel.UserID, doc *textract.Document) (resume.Content, error) {
	text, err := ExtractDocumentText(doc)
	if err != nil {
		return nil, err
	}

	s.archive(ctx, userID, doc)

	var content resume.Content
	if err := ai.CompleteJSON(ctx, s.generator, resume.ParsePrompt(text), &content); err != nil {
		return nil, err
	}

	logx.Infof("Resume parsed for user %s (%s, %d chars)", userID, doc.Name, len(text))
	return content, nil
}

// TailorResume rewrites content to match the job description
func (s *Service) TailorResume(ctx context.Context, req resume.TailorRequest) (resume.Content, error) {
	if req.ResumeData.IsEmpty() || strings.TrimSpace(req.JobDescription) == "" {
		return nil, resume.ErrTailorFieldsMissing()
	}

	var tailored resume.Content
	if err := ai.CompleteJSON(ctx, s.generator, resume.TailorPrompt(req.ResumeData, req.JobDescription), &tailored); err != nil {
		return nil, err
	}
	return tailored, nil
}

// ReadUpload loads a multipart resume upload. A nil header means no file was sent.
func ReadUpload(fh *multipart.FileHeader) (*textract.Document, error) {
	if fh == nil {
		return nil, resume.ErrNoFile()
	}
	doc, err := textract.ReadMultipart(fh)
	if err != nil {
		if errors.Is(err, textract.ErrFileTooLarge) {
			return nil, resume.ErrFileTooLarge()
		}
		return nil, errx.Wrap(err, "failed to read uploaded file", errx.TypeInternal)
	}
	return doc, nil
}

// ExtractDocumentText validates an uploaded resume and returns its text
func ExtractDocumentText(doc *textract.Document) (string, error) {
	if doc == nil {
		return "", resume.ErrNoFile()
	}
	if err := textract.ValidateResume(doc); err != nil {
		return "", mapExtractError(err)
	}

	text, err := textract.Extract(doc.MimeType, doc.Data)
	if err != nil {
		return "", mapExtractError(err)
	}
	if strings.TrimSpace(text) == "" {
		return "", resume.ErrNoText()
	}
	return text, nil
}

func mapExtractError(err error) error {
	switch {
	case errors.Is(err, textract.ErrFileTooLarge):
		return resume.ErrFileTooLarge()
	case errors.Is(err, textract.ErrUnsupportedType):
		return resume.ErrUnsupportedFileType().WithCause(err)
	case errors.Is(err, pdf.ErrNoText):
		return resume.ErrNoText()
	default:
		logx.Warnf("Document text extraction failed: %v", err)
		return resume.ErrNoText().WithCause(err)
	}
}

// archive stores the uploaded document. Failures are logged only.
func (s *Service) archive(ctx context.Context, userID kernel.UserID, doc *textract.Document) {
	if s.files == nil {
		return
	}

	name := filepath.Base(strings.ReplaceAll(doc.Name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = uuid.NewString()
	}
	path := s.files.Join("resumes", userID.String(), fmt.Sprintf("%d-%s", s.now().UnixMilli(), name))

	if err := s.files.WriteFile(ctx, path, doc.Data); err != nil {
		logx.Warnf("Failed to archive resume upload %s: %v", path, err)
		return
	}
	logx.Debugf("Archived resume upload to %s", path)
}

// ============================================================================
// Persistence
// ============================================================================

// SaveResume stores content as the user's resume
func (s *Service) SaveResume(ctx context.Context, userID kernel.UserID, content resume.Content) error {
	if content.IsEmpty() || !content.IsObject() {
		return resume.ErrDataRequired()
	}

	now := s.now().UTC()
	r := &resume.Resume{
		ID:        kernel.NewResumeID(uuid.NewString()),
		UserID:    userID,
		Title:     resume.TitleFor(content),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Upsert(ctx, r); err != nil {
		return errx.Wrap(err, "failed to save resume", errx.TypeInternal)
	}

	logx.Infof("Resume saved for user %s", userID)
	return nil
}

// GetResume returns the user's resume or nil when none was saved
func (s *Service) GetResume(ctx context.Context, userID kernel.UserID) (*resume.Resume, error) {
	r, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errx.IsCode(err, resume.CodeResumeNotFound) {
			return nil, nil
		}
		return nil, errx.Wrap(err, "failed to fetch resume", errx.TypeInternal)
	}
	return r, nil
}

// RecordATSScore stores the latest ATS score of the user's saved resume
func (s *Service) RecordATSScore(ctx context.Context, userID kernel.UserID, score int) error {
	if err := s.repo.UpdateATSScore(ctx, userID, resume.ClampScore(score)); err != nil {
		return errx.Wrap(err, "failed to update ATS score", errx.TypeInternal)
	}
	return nil
}

// ============================================================================
// Download
// ============================================================================

// Download renders content as HTML, or as PDF when requested and a renderer is configured
func (s *Service) Download(ctx context.Context, content resume.Content, format resume.Format) (*resume.Download, error) {
	if content.IsEmpty() {
		return nil, resume.ErrDataRequired()
	}

	data, err := content.Data()
	if err != nil {
		return nil, resume.ErrInvalidRequest().WithCause(err)
	}

	html, err := resume.RenderHTML(data)
	if err != nil {
		return nil, resume.ErrRenderFailed().WithCause(err)
	}

	if format == resume.FormatPDF {
		if s.renderer != nil {
			body, err := s.renderer.RenderPDF(ctx, html)
			if err != nil {
				logx.Errorf("PDF rendering failed: %v", err)
				return nil, resume.ErrRenderFailed().WithCause(err)
			}
			return &resume.Download{
				Filename:    resume.DownloadFilename(data, "pdf"),
				ContentType: "application/pdf",
				Body:        body,
			}, nil
		}
		logx.Debug("No PDF renderer configured, returning HTML")
	}

	return &resume.Download{
		Filename:    resume.DownloadFilename(data, "html"),
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(html),
	}, nil
}
