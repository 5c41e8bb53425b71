package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/prompts"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// TextGenerator is the slice of the LLM client the model detector needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ModelDetector asks a language model to list the skills mentioned in a
// document. Responses are filtered to the known vocabulary so a chatty model
// cannot inject skills the rest of the pipeline has no category or resource
// data for. It is optional; the pipeline only wires it when a model client
// is configured.
type ModelDetector struct {
	gen TextGenerator
}

func NewModelDetector(gen TextGenerator) *ModelDetector {
	return &ModelDetector{gen: gen}
}

func (d *ModelDetector) Name() string { return "model" }

var modelDetectPrompt = prompts.MustGet("extraction.json", "skill_detection")

func (d *ModelDetector) Detect(ctx context.Context, text string) ([]string, error) {
	prompt := prompts.Format(modelDetectPrompt, map[string]string{"Text": text})
	resp, err := d.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model detection: %w", err)
	}

	var found []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(resp, "\n") {
		key := types.NormalizeSkillKey(strings.TrimLeft(line, "-*• \t"))
		if key == "" || seen[key] || !vocabularySet[key] || excludedWords[key] {
			continue
		}
		seen[key] = true
		found = append(found, key)
	}
	return found, nil
}
