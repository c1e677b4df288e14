package textsource

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var (
	// ErrUnsupported is returned for payloads that are not PDF, DOCX or text.
	ErrUnsupported = errors.New("unsupported document type")
	// ErrEmpty is returned for zero-length payloads.
	ErrEmpty = errors.New("empty document")
)

// FromFile reads a LinkedIn export from disk and returns its plain text.
func FromFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return FromBytes(ctx, data, "", filepath.Base(path))
}

// FromReader drains r and extracts its text.
func FromReader(ctx context.Context, r io.Reader, mimeType string, fileName string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", fileName, err)
	}
	return FromBytes(ctx, data, mimeType, fileName)
}

// FromBytes extracts text from an in-memory payload.
// Libraries used: github.com/ledongthuc/pdf (PDF); DOCX is read as OOXML.
func FromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	normalized := normalizeMimeType(mimeType, fileName, data)
	switch normalized {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimeText:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrUnsupported, fileName)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, normalized)
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var buf strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		// Rows come top to bottom; glyph runs already carry their spaces.
		for _, row := range rows {
			for _, run := range row.Content {
				buf.WriteString(run.S)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// normalizeMimeType trusts an explicit type, then sniffs the payload, then
// falls back to the file extension.
func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == "" || clean == "application/octet-stream" {
		clean = strings.ToLower(strings.Split(http.DetectContentType(data), ";")[0])
	}
	if clean == "application/zip" {
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
	}
	if clean == MimePDF || clean == MimeDOCX || clean == MimeText {
		return clean
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".text":
		return MimeText
	default:
		return clean
	}
}

func mapOOXMLFromZip(data []byte) string {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return MimeDOCX
		}
	}
	return ""
}
