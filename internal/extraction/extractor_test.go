package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const sampleResumeText = `Senior Software Engineer with 5 years in Python, Django, and PostgreSQL.
Built Python services on AWS with Docker and strong leadership.`

type stubDetector struct {
	name  string
	names []string
	err   error
}

func (s *stubDetector) Name() string { return s.name }
func (s *stubDetector) Detect(context.Context, string) ([]string, error) {
	return s.names, s.err
}

func TestExtract_DictionaryOnly(t *testing.T) {
	extractor := NewExtractor(&DictionaryDetector{})
	skills, warnings := extractor.Extract(context.Background(), sampleResumeText)

	require.Empty(t, warnings)
	names := types.SkillNames(skills)
	assert.Equal(t, []string{"Python", "Django", "Postgresql", "Aws", "Docker", "Leadership"}, names,
		"most frequent first, ties in vocabulary order")
	assert.Equal(t, 2, skills[0].Frequency, "Python appears twice")
	assert.Equal(t, 1, skills[1].Frequency)
}

func TestExtract_ShortTextReturnsNothing(t *testing.T) {
	extractor := NewExtractor(&stubDetector{name: "stub", names: []string{"python"}})

	skills, warnings := extractor.Extract(context.Background(), "  python ")
	assert.Empty(t, skills)
	assert.Empty(t, warnings)
}

func TestExtract_UnionsDetectorsWithoutDuplicates(t *testing.T) {
	first := &stubDetector{name: "a", names: []string{"python", "docker"}}
	second := &stubDetector{name: "b", names: []string{"DOCKER", "kubernetes"}}
	extractor := NewExtractor(first, second)

	skills, warnings := extractor.Extract(context.Background(), "worked with python, docker, kubernetes daily")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"Python", "Docker", "Kubernetes"}, types.SkillNames(skills))
}

func TestExtract_FailedDetectorDegradesWithWarning(t *testing.T) {
	broken := &stubDetector{name: "pos-tagger", err: errors.New("model file missing")}
	working := &stubDetector{name: "dictionary", names: []string{"git"}}
	extractor := NewExtractor(broken, working)

	skills, warnings := extractor.Extract(context.Background(), "git all day every day")

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "pos-tagger detector unavailable")
	require.Len(t, skills, 1)
	assert.Equal(t, "Git", skills[0].Name)
}

func TestExtract_FiltersExcludedWords(t *testing.T) {
	detector := &stubDetector{name: "stub", names: []string{"experience", "python", "team"}}
	extractor := NewExtractor(detector)

	skills, _ := extractor.Extract(context.Background(), "years of experience with python on a team")

	require.Len(t, skills, 1)
	assert.Equal(t, "Python", skills[0].Name)
}

func TestExtract_SkillCategoriesAndKinds(t *testing.T) {
	extractor := NewExtractor(&DictionaryDetector{})
	skills, _ := extractor.Extract(context.Background(), "Python and leadership, plus some terraform work.")

	byName := make(map[string]types.Skill)
	for _, s := range skills {
		byName[s.Key()] = s
	}

	require.Contains(t, byName, "python")
	assert.Equal(t, "Programming Language", byName["python"].Category)
	assert.True(t, byName["python"].IsTechnical)

	require.Contains(t, byName, "leadership")
	assert.Equal(t, "Soft Skill", byName["leadership"].Category)
	assert.False(t, byName["leadership"].IsTechnical)

	require.Contains(t, byName, "terraform")
	assert.Equal(t, "DevOps Tool", byName["terraform"].Category)
}
