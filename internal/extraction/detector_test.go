package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryDetector_WholeWordOnly(t *testing.T) {
	detector := &DictionaryDetector{}

	found, err := detector.Detect(context.Background(), "The goal is javascript, not java script soup.")
	require.NoError(t, err)
	assert.Contains(t, found, "javascript")
	assert.Contains(t, found, "java", "standalone java in 'java script'")
	assert.NotContains(t, found, "go", "'goal' must not match 'go'")
}

func TestDictionaryDetector_PunctuatedTerms(t *testing.T) {
	detector := &DictionaryDetector{}

	found, err := detector.Detect(context.Background(), "Expert in C++ and C#, shipping on .NET and Node.js.")
	require.NoError(t, err)
	assert.Contains(t, found, "c++")
	assert.Contains(t, found, "c#")
	assert.Contains(t, found, ".net")
	assert.Contains(t, found, "node.js")
}

func TestDictionaryDetector_DeterministicOrder(t *testing.T) {
	detector := &DictionaryDetector{}
	text := "docker, python, aws, docker again"

	first, err := detector.Detect(context.Background(), text)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := detector.Detect(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTaggerDetector_ReturnsVocabularyKeys(t *testing.T) {
	detector := NewTaggerDetector()

	found, err := detector.Detect(context.Background(),
		"Experienced engineer using Python and Docker to build machine learning pipelines.")
	require.NoError(t, err)
	for _, key := range found {
		assert.True(t, IsKnownSkill(key), "tagger returned non-vocabulary key %q", key)
	}
}

func TestModelDetector_FiltersToVocabulary(t *testing.T) {
	gen := &stubGenerator{response: "- Python\n- Underwater Basket Weaving\n* docker\nkubernetes\n"}
	detector := NewModelDetector(gen)

	found, err := detector.Detect(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "docker", "kubernetes"}, found)
}

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateText(context.Context, string) (string, error) {
	return s.response, s.err
}
