package extraction

import (
	"context"
	"strings"
)

// SkillDetector finds skill mentions in document text. Detectors return
// normalized (lowercased) vocabulary keys; the extractor unions results
// across detectors and treats a detector error as a degraded run rather
// than a failure.
type SkillDetector interface {
	Name() string
	Detect(ctx context.Context, text string) ([]string, error)
}

// DictionaryDetector matches the skill vocabulary against text using
// whole-word patterns. It iterates the vocabulary in declaration order so
// repeated runs over the same text produce the same result order.
type DictionaryDetector struct{}

func (d *DictionaryDetector) Name() string { return "dictionary" }

func (d *DictionaryDetector) Detect(_ context.Context, text string) ([]string, error) {
	lower := strings.ToLower(text)
	var found []string
	for _, term := range skillVocabulary {
		if excludedWords[term] {
			continue
		}
		if termPatterns[term].MatchString(lower) {
			found = append(found, term)
		}
	}
	return found, nil
}
