package pdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

var ErrNoText = errors.New("pdf has no extractable text")

// ExtractText returns the text of every page using MuPDF. Pages are separated by a blank line.
func ExtractText(pdfData []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var builder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(text)
	}

	if builder.Len() == 0 {
		return "", ErrNoText
	}
	return builder.String(), nil
}

