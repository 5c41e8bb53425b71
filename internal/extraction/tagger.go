package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// TaggerDetector extracts candidate skills with part-of-speech tagging.
// Noun tokens and runs of consecutive nouns are checked against the skill
// vocabulary, which catches mentions the dictionary patterns miss in noisy
// text (hyphenation artifacts, odd casing from PDF extraction). Any tagging
// failure is reported to the caller so extraction can continue on the
// dictionary results alone.
type TaggerDetector struct{}

func NewTaggerDetector() *TaggerDetector { return &TaggerDetector{} }

func (d *TaggerDetector) Name() string { return "pos-tagger" }

func (d *TaggerDetector) Detect(_ context.Context, text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("pos tagging: %w", err)
	}

	var found []string
	seen := make(map[string]bool)
	add := func(key string) {
		if key == "" || seen[key] || excludedWords[key] || !vocabularySet[key] {
			return
		}
		seen[key] = true
		found = append(found, key)
	}

	var run []string
	flush := func() {
		// Check every contiguous sub-phrase of the noun run, longest first,
		// so multi-word vocabulary entries win over their parts.
		for size := len(run); size >= 2; size-- {
			for start := 0; start+size <= len(run); start++ {
				add(strings.Join(run[start:start+size], " "))
			}
		}
		for _, word := range run {
			add(word)
		}
		run = run[:0]
	}

	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") {
			run = append(run, strings.ToLower(tok.Text))
			continue
		}
		flush()
	}
	flush()

	return found, nil
}
