package extraction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ErrNoSkills is returned by callers that require at least one extracted
// skill to proceed; the extractor itself reports an empty result, not an error.
var ErrNoSkills = errors.New("extraction: no skills found in text")

// minTextLength is the shortest input worth running detectors on. Anything
// below this is treated as empty rather than an error.
const minTextLength = 10

// Extractor runs a set of detectors over document text and unions their
// results into frequency-ranked skills.
type Extractor struct {
	detectors []SkillDetector
}

// NewExtractor builds an extractor over the given detectors. With no
// arguments it uses the default pair: dictionary matching plus POS tagging.
func NewExtractor(detectors ...SkillDetector) *Extractor {
	if len(detectors) == 0 {
		detectors = []SkillDetector{&DictionaryDetector{}, NewTaggerDetector()}
	}
	return &Extractor{detectors: detectors}
}

// Extract returns the skills found in text, most frequent first, along with
// warnings for any detector that failed. A failing detector never fails the
// extraction; at worst every detector degrades and the result is empty.
// Frequency is the whole-word occurrence count of the skill in the text.
func (e *Extractor) Extract(ctx context.Context, text string) ([]types.Skill, []string) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minTextLength {
		return nil, nil
	}
	lower := strings.ToLower(trimmed)

	var keys []string
	var warnings []string
	seen := make(map[string]bool)
	for _, detector := range e.detectors {
		names, err := detector.Detect(ctx, trimmed)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s detector unavailable: %v", detector.Name(), err))
			continue
		}
		for _, name := range names {
			key := types.NormalizeSkillKey(name)
			if key == "" || seen[key] || excludedWords[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}

	skills := make([]types.Skill, 0, len(keys))
	for _, key := range keys {
		freq := countOccurrences(lower, key)
		if freq == 0 {
			freq = 1
		}
		skills = append(skills, types.NewSkill(key, CategoryFor(key), IsTechnical(key), freq))
	}

	// Stable sort keeps detector encounter order for equal frequencies.
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Frequency > skills[j].Frequency
	})
	return skills, warnings
}

func countOccurrences(lowerText, key string) int {
	re, ok := termPatterns[key]
	if !ok {
		re = wholeWordPattern(key)
	}
	return len(re.FindAllString(lowerText, -1))
}
