// Package textract turns uploaded resume documents into plain text.
package textract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Abraxas-365/careersync/internal/pdf"
	"github.com/Abraxas-365/careersync/pkg/logx"
	lpdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadSize is the largest accepted resume upload
const MaxUploadSize = 10 << 20

const (
	MimePlain       = "text/plain"
	MimePDF         = "application/pdf"
	MimeDOC         = "application/msword"
	MimeDOCX        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeOctetStream = "application/octet-stream"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds the 10MB limit")
)

// Document is an uploaded file held in memory
type Document struct {
	Name     string
	MimeType string
	Data     []byte
}

// ReadMultipart loads an uploaded file and resolves its mime type
func ReadMultipart(fh *multipart.FileHeader) (*Document, error) {
	if fh.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	return &Document{
		Name:     fh.Filename,
		MimeType: DetectMime(fh.Header.Get("Content-Type"), fh.Filename, data),
		Data:     data,
	}, nil
}

// ValidateResume accepts PDF, DOC and DOCX files up to MaxUploadSize
func ValidateResume(doc *Document) error {
	if len(doc.Data) > MaxUploadSize {
		return ErrFileTooLarge
	}
	switch doc.MimeType {
	case MimePDF, MimeDOC, MimeDOCX:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, doc.MimeType)
	}
}

// DetectMime trusts the declared type unless it is missing or generic
func DetectMime(declared, name string, data []byte) string {
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if declared != "" && declared != MimeOctetStream {
		return declared
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".doc":
		return MimeDOC
	case ".txt":
		return MimePlain
	}

	sniffed := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(sniffed, MimePDF):
		return MimePDF
	case strings.HasPrefix(sniffed, "application/zip") && bytes.Contains(data, []byte("word/document.xml")):
		return MimeDOCX
	case strings.HasPrefix(sniffed, MimePlain):
		return MimePlain
	}
	return MimeOctetStream
}

// Extract returns the plain text of data according to its mime type
func Extract(mime string, data []byte) (string, error) {
	switch mime {
	case MimePlain:
		return string(data), nil
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDocx(data)
	case MimeDOC:
		// Word 97-2003 files are often DOCX with a legacy extension
		text, err := extractDocx(data)
		if err != nil {
			return "", fmt.Errorf("%w: legacy .doc files are not supported", ErrUnsupportedType)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
}

// ============================================================================
// PDF
// ============================================================================

func extractPDF(data []byte) (text string, err error) {
	text, err = extractPDFPlain(data)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if err != nil {
		logx.Debugf("pure-Go PDF reader failed, falling back to MuPDF: %v", err)
	}

	return pdf.ExtractText(data)
}

func extractPDFPlain(data []byte) (text string, err error) {
	// the reader panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// ============================================================================
// DOCX
// ============================================================================

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent())
}

// docxPlainText keeps the w:t runs of document.xml, one line per paragraph
func docxPlainText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var builder strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read docx xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				builder.WriteString("\t")
			case "br":
				builder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				builder.Write(t)
			}
		}
	}
	return strings.TrimSpace(builder.String()), nil
}
