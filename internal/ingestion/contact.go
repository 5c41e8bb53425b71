package ingestion

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ExtractContact fills the resume's name, email, and phone from its text.
// Fields that cannot be found stay empty; contact info is informational and
// never fails an analysis.
func ExtractContact(resume *types.Resume) {
	text := resume.ExtractedText

	if match := emailPattern.FindString(text); match != "" {
		resume.Email = match
	}
	if match := phonePattern.FindString(text); match != "" {
		resume.Phone = strings.TrimSpace(match)
	}
	resume.UserName = guessName(text)
}

// guessName scans the first lines for something shaped like a person's
// name: two to four words, leading capital, no digits.
func guessName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		runes := []rune(line)
		if !unicode.IsUpper(runes[0]) {
			continue
		}
		if strings.ContainsAny(line, "0123456789@") {
			continue
		}
		return line
	}
	return ""
}
