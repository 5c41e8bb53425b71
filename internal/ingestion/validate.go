// Package ingestion turns a resume file into cleaned text with basic
// contact metadata: validation, format-specific text extraction, and
// normalization.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	// MaxFileSizeBytes caps accepted resume files at 10 MB.
	MaxFileSizeBytes = 10 * 1024 * 1024
	// minExtractedChars is the shortest extraction considered a real resume.
	minExtractedChars = 50
)

var allowedExtensions = map[string]types.FileType{
	".pdf":  types.FileTypePDF,
	".txt":  types.FileTypeUnknown,
	".text": types.FileTypeUnknown,
	".md":   types.FileTypeUnknown,
	".html": types.FileTypeUnknown,
	".htm":  types.FileTypeUnknown,
	".png":  types.FileTypeImage,
	".jpg":  types.FileTypeImage,
	".jpeg": types.FileTypeImage,
	".bmp":  types.FileTypeImage,
	".tif":  types.FileTypeImage,
	".tiff": types.FileTypeImage,
}

// DetectFileType classifies a path by extension.
func DetectFileType(path string) types.FileType {
	ft, ok := allowedExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return types.FileTypeUnknown
	}
	return ft
}

// ValidateFile checks that a path points to a readable resume file of an
// accepted format and size. It returns the user-facing reason on failure.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("cannot access file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if info.Size() > MaxFileSizeBytes {
		return fmt.Errorf("file exceeds %d MB limit: %s", MaxFileSizeBytes/(1024*1024), path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("unsupported file extension %q (accepted: pdf, txt, md, html, png, jpg)", ext)
	}
	return nil
}
