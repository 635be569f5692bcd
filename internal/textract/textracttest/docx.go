// Package textracttest builds small documents for tests of upload handling.
package textracttest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"mime/multipart"
	"net/textproto"
	"strings"
)

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// Docx returns a minimal DOCX file with one paragraph per line
func Docx(lines ...string) []byte {
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		body.WriteString("<w:p><w:r><w:t>")
		_ = xml.EscapeText(&body, []byte(line))
		body.WriteString("</w:t></w:r></w:p>")
	}
	body.WriteString("</w:body></w:document>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, content string }{
		{"word/document.xml", body.String()},
		{"word/_rels/document.xml.rels", relsXML},
	} {
		w, err := zw.Create(f.name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Upload is one file part of a multipart form
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// MultipartBody encodes files and plain fields as multipart/form-data.
// It returns the body and its Content-Type header.
func MultipartBody(fields map[string]string, files ...Upload) (*bytes.Buffer, string) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			panic(err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Filename+`"`)
		h.Set("Content-Type", f.ContentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			panic(err)
		}
		if _, err := part.Write(f.Data); err != nil {
			panic(err)
		}
	}
	if err := mw.Close(); err != nil {
		panic(err)
	}
	return &body, mw.FormDataContentType()
}
