package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ParseResume validates a resume file, extracts its text, and pulls basic
// contact details. Image files are rejected: there is no OCR path, and a
// silent empty extraction would poison the whole analysis.
func ParseResume(path string) (*types.Resume, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}

	fileType := DetectFileType(path)
	if fileType == types.FileTypeImage {
		return nil, fmt.Errorf("image resumes are not supported, convert %s to PDF or text first", filepath.Base(path))
	}

	text, err := extractText(path)
	if err != nil {
		return nil, err
	}
	text = CleanText(text)
	if len(text) < minExtractedChars {
		return nil, fmt.Errorf("extracted text too short (%d chars), %s does not look like a resume", len(text), filepath.Base(path))
	}

	resume := &types.Resume{
		Filename:      filepath.Base(path),
		FileType:      fileType,
		ExtractedText: text,
	}
	ExtractContact(resume)
	return resume, nil
}

func extractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFText(path)
	case ".html", ".htm":
		return extractHTMLText(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading pdf text from %s: %w", path, err)
	}
	return buf.String(), nil
}

func extractHTMLText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("parsing html %s: %w", path, err)
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() == 0 {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
	})
	if sb.Len() == 0 {
		return doc.Text(), nil
	}
	return sb.String(), nil
}
