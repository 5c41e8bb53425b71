package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline/steps"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const sampleResumeText = `Jane Smith
jane.smith@example.com | (555) 123-4567

EXPERIENCE
Senior Software Engineer building Python services with Django and PostgreSQL.
Deployed Python applications to AWS using Docker. Known for strong leadership.
This resume needs enough text to clear the minimum extraction length easily.
`

func writeSampleResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResumeText), 0o644))
	return path
}

type stubFetcher struct {
	jobs    []types.Job
	warning string
	err     error
}

func (s *stubFetcher) FetchJobs(context.Context, string, int) ([]types.Job, string, error) {
	return s.jobs, s.warning, s.err
}

func stubJobs() []types.Job {
	mk := func(title string, skills ...string) types.Job {
		job := types.Job{Title: title, Company: "Acme"}
		for _, name := range skills {
			job.AddRequiredSkill(types.NewSkill(name, "Technical", true, 1))
		}
		return job
	}
	return []types.Job{
		mk("Backend Engineer", "Python", "Docker", "Kubernetes"),
		mk("Platform Engineer", "Docker", "Kubernetes", "Terraform"),
		mk("Software Engineer", "Python", "Django", "Aws"),
		mk("Infrastructure Engineer", "Kubernetes", "Terraform"),
	}
}

func TestRunPipeline_EndToEnd(t *testing.T) {
	var events []ProgressEvent
	opts := RunOptions{
		ResumePath: writeSampleResume(t),
		Fetcher:    &stubFetcher{jobs: stubJobs()},
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	}

	result, warnings, err := RunPipeline(context.Background(), opts)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, warnings)

	assert.Equal(t, "Jane Smith", result.Resume.UserName)
	assert.True(t, result.Resume.HasSkill("Python"))
	assert.Len(t, result.AnalyzedJobs, 4)
	assert.NotEmpty(t, result.MatchingSkills)
	assert.NotEmpty(t, result.MissingSkills, "Kubernetes and Terraform are not on the resume")
	assert.Contains(t, result.LearningPath, "YOUR PERSONALIZED 4-WEEK LEARNING PATH")
	assert.NotEmpty(t, result.RecommendedResources)

	require.Len(t, events, len(steps.Ordered()))
	last := 0
	for i, def := range steps.Ordered() {
		assert.Equal(t, def.Name, events[i].Step)
		assert.Equal(t, def.Category, events[i].Category)
		assert.Greater(t, events[i].Percent, last)
		last = events[i].Percent
	}
	assert.Equal(t, 100, events[len(events)-1].Percent)
}

func TestRunPipeline_WritesLearningPathFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	opts := RunOptions{
		ResumePath: writeSampleResume(t),
		Fetcher:    &stubFetcher{jobs: stubJobs()},
		OutputDir:  outDir,
	}

	result, _, err := RunPipeline(context.Background(), opts)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "learning_path.txt"))
	require.NoError(t, err)
	assert.Equal(t, result.LearningPath, string(data))
}

func TestRunPipeline_MissingResumeIsFatal(t *testing.T) {
	opts := RunOptions{
		ResumePath: filepath.Join(t.TempDir(), "nope.txt"),
		Fetcher:    &stubFetcher{jobs: stubJobs()},
	}

	result, _, err := RunPipeline(context.Background(), opts)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRunPipeline_NoSkillsIsFatal(t *testing.T) {
	// Long enough to parse, but mentions nothing from the skill vocabulary.
	path := filepath.Join(t.TempDir(), "resume.txt")
	text := "John Doe\n\nEXPERIENCE\nWorked on various initiatives and delivered outcomes across several departments over many happy fulfilling decades.\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	opts := RunOptions{
		ResumePath: path,
		Fetcher:    &stubFetcher{jobs: stubJobs()},
	}

	result, _, err := RunPipeline(context.Background(), opts)

	require.Error(t, err)
	assert.ErrorIs(t, err, extraction.ErrNoSkills)
	assert.Nil(t, result)
}

func TestRunPipeline_FetchErrorIsFatal(t *testing.T) {
	opts := RunOptions{
		ResumePath: writeSampleResume(t),
		Fetcher:    &stubFetcher{err: errors.New("network down")},
	}

	_, _, err := RunPipeline(context.Background(), opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job fetch failed")
}

func TestRunPipeline_EmptyCorpusIsFatal(t *testing.T) {
	opts := RunOptions{
		ResumePath: writeSampleResume(t),
		Fetcher:    &stubFetcher{},
	}

	_, _, err := RunPipeline(context.Background(), opts)

	assert.Error(t, err)
}

func TestRunPipeline_FetchWarningIsSurfaced(t *testing.T) {
	opts := RunOptions{
		ResumePath: writeSampleResume(t),
		Fetcher:    &stubFetcher{jobs: stubJobs(), warning: "job API fetch failed, using sample jobs: timeout"},
	}

	_, warnings, err := RunPipeline(context.Background(), opts)

	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "using sample jobs")
}

func TestProgressTracker_RejectsStepWithIncompleteDependencies(t *testing.T) {
	tracker := newProgressTracker(nil)

	err := tracker.complete(steps.StepClusterMatch, "out of order", nil)

	var depErr *steps.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, steps.StepClusterMatch, depErr.Step)
}

func TestProgressTracker_AcceptsDeclaredOrder(t *testing.T) {
	tracker := newProgressTracker(nil)

	for _, def := range steps.Ordered() {
		require.NoError(t, tracker.complete(def.Name, "", nil))
	}
}

func TestRunPipeline_NoGapsSkipsWeeklyPlan(t *testing.T) {
	// Every demanded skill appears on the resume.
	jobs := []types.Job{{Title: "Software Engineer", Company: "Acme"}}
	jobs[0].AddRequiredSkill(types.NewSkill("Python", "Technical", true, 1))
	jobs[0].AddRequiredSkill(types.NewSkill("Docker", "Technical", true, 1))

	opts := RunOptions{
		ResumePath: writeSampleResume(t),
		Fetcher:    &stubFetcher{jobs: jobs},
	}

	result, _, err := RunPipeline(context.Background(), opts)

	require.NoError(t, err)
	assert.Empty(t, result.MissingSkills)
	assert.Contains(t, result.LearningPath, "CONGRATULATIONS")
}
