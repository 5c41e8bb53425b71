package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/catalog"
	"github.com/jonathan/skillgap-analyzer/internal/plan"
	"github.com/jonathan/skillgap-analyzer/internal/schemas"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

var schemaFiles = []string{
	"common.schema.json",
	"resume.schema.json",
	"job.schema.json",
	"learning_resource.schema.json",
	"learning_week.schema.json",
	"analysis_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

// validateAgainst marshals v and validates it against the named schema file.
func validateAgainst(t *testing.T, schemaFile string, v any) error {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0o644))

	return schemas.ValidateJSON(filepath.Join(".", schemaFile), jsonPath)
}

func TestResumeSchema_AcceptsParsedResume(t *testing.T) {
	resume := &types.Resume{
		Filename: "jane.pdf",
		FileType: types.FileTypePDF,
		UserName: "Jane Smith",
		Email:    "jane@example.com",
		Skills: []types.Skill{
			types.NewSkill("Python", "Programming Language", true, 3),
		},
	}

	assert.NoError(t, validateAgainst(t, "resume.schema.json", resume))
}

func TestJobSchema_AcceptsJob(t *testing.T) {
	job := types.Job{Title: "Backend Engineer", Company: "Acme"}
	job.AddRequiredSkill(types.NewSkill("Go", "Programming Language", true, 1))

	assert.NoError(t, validateAgainst(t, "job.schema.json", job))
}

func TestJobSchema_RejectsMissingTitle(t *testing.T) {
	err := validateAgainst(t, "job.schema.json", map[string]any{"company": "Acme"})

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLearningResourceSchema_AcceptsSeedCatalog(t *testing.T) {
	for _, resource := range catalog.SeedResources() {
		assert.NoError(t, validateAgainst(t, "learning_resource.schema.json", resource),
			"seed resource %q must match the schema", resource.ResourceTitle)
	}
}

func TestLearningWeekSchema_AcceptsBuiltWeek(t *testing.T) {
	priority := []types.Skill{
		types.NewSkill("Docker", "DevOps Tool", true, 3),
		types.NewSkill("Kubernetes", "DevOps Tool", true, 2),
	}
	weeks := plan.BuildWeeks(priority, nil)
	require.NotEmpty(t, weeks)

	assert.NoError(t, validateAgainst(t, "learning_week.schema.json", weeks[0]))
}

func TestAnalysisResultSchema_AcceptsFullResult(t *testing.T) {
	clusterID := 1
	result := &types.AnalysisResult{
		Resume: &types.Resume{
			Filename: "jane.pdf",
			FileType: types.FileTypePDF,
			Skills:   []types.Skill{types.NewSkill("Python", "Programming Language", true, 2)},
		},
		AnalyzedJobs: []types.Job{
			{Title: "Backend Engineer", Company: "Acme"},
		},
		MatchingSkills:    []types.Skill{types.NewSkill("Python", "Programming Language", true, 1)},
		MissingSkills:     []types.Skill{types.NewSkill("Kubernetes", "DevOps Tool", true, 4)},
		MatchPercentage:   66.67,
		ClusterID:         &clusterID,
		JobsInSameCluster: 2,
	}

	assert.NoError(t, validateAgainst(t, "analysis_result.schema.json", result))
}

func TestAnalysisResultSchema_RejectsOutOfRangePercentage(t *testing.T) {
	result := &types.AnalysisResult{
		Resume:          &types.Resume{Filename: "r.txt", FileType: types.FileTypeUnknown},
		MatchPercentage: 150,
	}

	err := validateAgainst(t, "analysis_result.schema.json", result)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
