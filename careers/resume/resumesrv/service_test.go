package resumesrv

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/careersync/careers/resume"
	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/internal/textract"
	"github.com/Abraxas-365/careersync/internal/textract/textracttest"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

type memoryRepo struct {
	byUser map[kernel.UserID]*resume.Resume
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byUser: map[kernel.UserID]*resume.Resume{}}
}

func (m *memoryRepo) GetByUserID(ctx context.Context, userID kernel.UserID) (*resume.Resume, error) {
	r, ok := m.byUser[userID]
	if !ok {
		return nil, resume.ErrResumeNotFound()
	}
	cp := *r
	return &cp, nil
}

func (m *memoryRepo) Upsert(ctx context.Context, r *resume.Resume) error {
	if existing, ok := m.byUser[r.UserID]; ok {
		existing.Content = r.Content
		existing.UpdatedAt = r.UpdatedAt
		return nil
	}
	cp := *r
	m.byUser[r.UserID] = &cp
	return nil
}

func (m *memoryRepo) UpdateATSScore(ctx context.Context, userID kernel.UserID, score int) error {
	r, ok := m.byUser[userID]
	if !ok {
		return resume.ErrResumeNotFound()
	}
	r.ATSScore = &score
	return nil
}

type stubRenderer struct {
	html string
	err  error
}

func (s *stubRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	s.html = html
	return []byte("%PDF-1.7"), s.err
}

func docxDocument(lines ...string) *textract.Document {
	return &textract.Document{Name: "cv.docx", MimeType: textract.MimeDOCX, Data: textracttest.Docx(lines...)}
}

func TestParseResume(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	files := fsxlocal.NewLocalFileSystem(dir)

	gen := &stubGenerator{reply: "Here you go:\n```json\n{\"personalInfo\":{\"name\":\"Ana Diaz\"},\"skills\":[\"Go\"]}\n```"}
	svc := NewService(newMemoryRepo(), gen, files, nil)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	content, err := svc.ParseResume(ctx, "user-1", docxDocument("Ana Diaz", "Go Engineer"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"personalInfo":{"name":"Ana Diaz"},"skills":["Go"]}`, string(content))

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Ana Diaz")
	assert.Contains(t, gen.prompts[0], "Go Engineer")

	archived, err := os.ReadFile(filepath.Join(dir, "resumes", "user-1", "1700000000000-cv.docx"))
	require.NoError(t, err)
	assert.NotEmpty(t, archived)
}

func TestParseResumeErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		doc      *textract.Document
		gen      *stubGenerator
		wantCode errx.Code
		status   int
	}{
		{
			name:     "no file",
			doc:      nil,
			gen:      &stubGenerator{},
			wantCode: resume.CodeNoFile,
			status:   http.StatusBadRequest,
		},
		{
			name:     "unsupported type",
			doc:      &textract.Document{Name: "cv.txt", MimeType: textract.MimePlain, Data: []byte("hi")},
			gen:      &stubGenerator{},
			wantCode: resume.CodeUnsupportedFileType,
			status:   http.StatusBadRequest,
		},
		{
			name:     "blank document",
			doc:      docxDocument("   "),
			gen:      &stubGenerator{},
			wantCode: resume.CodeNoText,
			status:   http.StatusBadRequest,
		},
		{
			name:     "model without json",
			doc:      docxDocument("Ana"),
			gen:      &stubGenerator{reply: "Sorry, I cannot help with that."},
			wantCode: ai.CodeMalformedResponse,
			status:   http.StatusInternalServerError,
		},
		{
			name:     "model failure",
			doc:      docxDocument("Ana"),
			gen:      &stubGenerator{err: errors.New("quota exceeded")},
			wantCode: ai.CodeUpstreamFailed,
			status:   http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemoryRepo(), tt.gen, nil, nil)
			_, err := svc.ParseResume(ctx, "u", tt.doc)
			require.Error(t, err)
			e, ok := errx.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, e.Code)
			assert.Equal(t, tt.status, e.HTTPStatus)
		})
	}
}

func TestTailorResume(t *testing.T) {
	ctx := context.Background()
	gen := &stubGenerator{reply: `{"summary":"Go expert"}`}
	svc := NewService(newMemoryRepo(), gen, nil, nil)

	_, err := svc.TailorResume(ctx, resume.TailorRequest{JobDescription: "Go"})
	assert.True(t, errx.IsCode(err, resume.CodeTailorFieldsMissing))

	_, err = svc.TailorResume(ctx, resume.TailorRequest{ResumeData: resume.Content(`{"summary":"x"}`), JobDescription: "  "})
	assert.True(t, errx.IsCode(err, resume.CodeTailorFieldsMissing))
	assert.Empty(t, gen.prompts)

	out, err := svc.TailorResume(ctx, resume.TailorRequest{ResumeData: resume.Content(`{"summary":"x"}`), JobDescription: "Senior Go role"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"Go expert"}`, string(out))
	assert.Contains(t, gen.prompts[0], "Senior Go role")
}

func TestSaveThenGetRoundTrips(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := NewService(repo, &stubGenerator{}, nil, nil)

	got, err := svc.GetResume(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	first := resume.Content(`{"personalInfo":{"name":"Ana"},"custom":{"a":[1,2,3]}}`)
	require.NoError(t, svc.SaveResume(ctx, "user-1", first))

	got, err = svc.GetResume(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Resume", got.Title)
	assert.JSONEq(t, string(first), string(got.Content))

	second := resume.Content(`{"personalInfo":{"name":"Ana Maria"}}`)
	require.NoError(t, svc.SaveResume(ctx, "user-1", second))

	got, err = svc.GetResume(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Resume", got.Title)
	assert.JSONEq(t, string(second), string(got.Content))
	assert.Len(t, repo.byUser, 1)
}

func TestSaveRequiresObject(t *testing.T) {
	svc := NewService(newMemoryRepo(), &stubGenerator{}, nil, nil)

	for _, c := range []resume.Content{nil, resume.Content("null"), resume.Content(`"text"`)} {
		err := svc.SaveResume(context.Background(), "u", c)
		assert.True(t, errx.IsCode(err, resume.CodeDataRequired))
	}
}

func TestRecordATSScore(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := NewService(repo, &stubGenerator{}, nil, nil)

	err := svc.RecordATSScore(ctx, "u", 50)
	assert.True(t, errx.IsCode(err, resume.CodeResumeNotFound))

	require.NoError(t, svc.SaveResume(ctx, "u", resume.Content(`{}`)))
	require.NoError(t, svc.RecordATSScore(ctx, "u", 130))
	assert.Equal(t, 100, *repo.byUser["u"].ATSScore)
}

func TestDownload(t *testing.T) {
	ctx := context.Background()
	content := resume.Content(`{"personalInfo":{"name":"Ana Diaz"},"summary":"Builder"}`)

	t.Run("html", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubGenerator{}, nil, nil)
		out, err := svc.Download(ctx, content, resume.FormatHTML)
		require.NoError(t, err)
		assert.Equal(t, "Ana Diaz.html", out.Filename)
		assert.True(t, strings.HasPrefix(out.ContentType, "text/html"))
		assert.Contains(t, string(out.Body), "Builder")
	})

	t.Run("pdf without renderer falls back", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubGenerator{}, nil, nil)
		out, err := svc.Download(ctx, content, resume.FormatPDF)
		require.NoError(t, err)
		assert.Equal(t, "Ana Diaz.html", out.Filename)
	})

	t.Run("pdf", func(t *testing.T) {
		renderer := &stubRenderer{}
		svc := NewService(newMemoryRepo(), &stubGenerator{}, nil, renderer)
		out, err := svc.Download(ctx, content, resume.FormatPDF)
		require.NoError(t, err)
		assert.Equal(t, "Ana Diaz.pdf", out.Filename)
		assert.Equal(t, "application/pdf", out.ContentType)
		assert.Contains(t, renderer.html, "Builder")
	})

	t.Run("renderer failure", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubGenerator{}, nil, &stubRenderer{err: errors.New("chromium crashed")})
		_, err := svc.Download(ctx, content, resume.FormatPDF)
		assert.True(t, errx.IsCode(err, resume.CodeRenderFailed))
	})

	t.Run("missing data", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubGenerator{}, nil, nil)
		_, err := svc.Download(ctx, nil, resume.FormatHTML)
		assert.True(t, errx.IsCode(err, resume.CodeDataRequired))
	})
}
