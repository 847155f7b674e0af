package pdftext

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor turns resume documents into plain text for the model prompt.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// ExtractFile dispatches on file extension. PDF is the primary format,
// DOCX and plain text ride along for free.
func (e *Extractor) ExtractFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".docx":
		return extractDocx(path)
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func (e *Extractor) extractPDF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text, err := structuredPDFText(data)
	if err != nil || len(strings.TrimSpace(text)) == 0 {
		// salvage pass over the raw content streams
		slog.Warn("structured PDF extraction failed, salvaging raw text", "path", path, "err", err)
		text = salvageText(data)
		if len(strings.TrimSpace(text)) == 0 {
			return "", fmt.Errorf("failed to extract text from %s: %v", filepath.Base(path), err)
		}
	}

	// Link annotations carry GitHub/LinkedIn URLs that rarely appear in the
	// rendered text, append them so the model can extract them.
	for _, uri := range scanURIs(data) {
		lower := strings.ToLower(uri)
		switch {
		case strings.Contains(lower, "github"):
			text += "\nGitHub: " + uri
		case strings.Contains(lower, "linkedin"):
			text += "\nLinkedIn: " + uri
		default:
			text += "\nLink: " + uri
		}
	}
	return text, nil
}

func structuredPDFText(data []byte) (text string, err error) {
	// the pdf package panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, _ := page.GetPlainText(nil)
		b.WriteString(pageText)
	}
	return b.String(), nil
}

var uriPattern = regexp.MustCompile(`/URI\s*\(([^)]+)\)`)

// scanURIs pulls link annotation targets straight out of the raw bytes.
func scanURIs(data []byte) []string {
	var uris []string
	seen := make(map[string]bool)
	for _, m := range uriPattern.FindAllSubmatch(data, -1) {
		uri := string(m[1])
		if !strings.HasPrefix(uri, "http") || seen[uri] {
			continue
		}
		seen[uri] = true
		uris = append(uris, uri)
	}
	return uris
}

var tjPattern = regexp.MustCompile(`\(((?:[^()\\]|\\.)+)\)\s*Tj`)

// salvageText recovers show-text operands from uncompressed content streams.
// Only useful for PDFs the structured reader chokes on.
func salvageText(data []byte) string {
	var b strings.Builder
	for _, m := range tjPattern.FindAllSubmatch(data, -1) {
		s := string(m[1])
		s = strings.ReplaceAll(s, `\(`, "(")
		s = strings.ReplaceAll(s, `\)`, ")")
		s = strings.ReplaceAll(s, `\\`, `\`)
		b.WriteString(s)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
