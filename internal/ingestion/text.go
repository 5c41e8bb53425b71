package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace   = regexp.MustCompile(`[ \t]+`)
	nonASCII     = regexp.MustCompile(`[^\x00-\x7F]+`)
	excessBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted resume text: line endings, PDF artifacts
// (non-ASCII glyphs, ligatures), repeated whitespace. Line structure is
// preserved so the name heuristic in contact extraction still has lines to
// look at.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = nonASCII.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
