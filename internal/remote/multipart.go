package remote

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Multipart is an ordered multipart/form-data body.
type Multipart struct {
	fields []formField
	files  []formFile
}

type formField struct{ name, value string }

type formFile struct {
	name   string
	header *multipart.FileHeader
}

// Field appends a text field. Empty values are skipped so optional inputs
// are not sent.
func (m *Multipart) Field(name, value string) *Multipart {
	if value != "" {
		m.fields = append(m.fields, formField{name, value})
	}
	return m
}

// File appends an uploaded file under name. A nil header is skipped.
func (m *Multipart) File(name string, fh *multipart.FileHeader) *Multipart {
	if fh != nil {
		m.files = append(m.files, formFile{name, fh})
	}
	return m
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (m *Multipart) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, f := range m.files {
		if err := copyFile(w, f); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func copyFile(w *multipart.Writer, f formFile) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.name), quoteEscaper.Replace(f.header.Filename)))
	ct := f.header.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", f.name, err)
	}
	src, err := f.header.Open()
	if err != nil {
		return fmt.Errorf("open upload %s: %w", f.header.Filename, err)
	}
	defer src.Close()
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy upload %s: %w", f.header.Filename, err)
	}
	return nil
}
