package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

func jobWith(title string, skills ...string) types.Job {
	job := types.Job{Title: title, Company: "Test Corp"}
	for _, s := range skills {
		job.AddRequiredSkill(types.NewSkill(s, "Technical", true, 1))
	}
	return job
}

func TestIdentify_CountsDistinctJobs(t *testing.T) {
	resume := []types.Skill{
		types.NewSkill("Python", "Programming Language", true, 3),
		types.NewSkill("Git", "Version Control", true, 1),
	}
	jobs := []types.Job{
		jobWith("Backend Dev", "Python", "Docker", "Kubernetes"),
		jobWith("Platform Eng", "Docker", "Terraform"),
		jobWith("SRE", "Docker", "Kubernetes", "Git"),
	}

	matching, missing := Identify(resume, jobs)

	require.Len(t, matching, 2)
	assert.Equal(t, []string{"Python", "Git"}, types.SkillNames(matching))
	assert.Equal(t, 1, matching[0].Frequency)
	assert.Equal(t, 1, matching[1].Frequency)

	require.Len(t, missing, 3)
	assert.Equal(t, []string{"Docker", "Kubernetes", "Terraform"}, types.SkillNames(missing))
	assert.Equal(t, 3, missing[0].Frequency, "Docker demanded by all three jobs")
	assert.Equal(t, 2, missing[1].Frequency)
	assert.Equal(t, 1, missing[2].Frequency)
}

func TestIdentify_MatchingSkillsCarryJobDemand(t *testing.T) {
	resume := []types.Skill{types.NewSkill("Python", "Programming Language", true, 5)}
	jobs := []types.Job{
		jobWith("Backend Dev", "Python", "Docker"),
		jobWith("Data Eng", "Python", "Spark"),
		jobWith("Frontend Dev", "React"),
	}

	matching, _ := Identify(resume, jobs)

	require.Len(t, matching, 1)
	assert.Equal(t, "Python", matching[0].Name)
	assert.Equal(t, 2, matching[0].Frequency, "two jobs demand it")
}

func TestIdentify_DuplicateWithinOneJobCountsOnce(t *testing.T) {
	job := types.Job{Title: "Dev", Company: "Test Corp", RequiredSkills: []types.Skill{
		types.NewSkill("Docker", "Technical", true, 1),
		types.NewSkill("docker", "Technical", true, 1),
	}}

	_, missing := Identify(nil, []types.Job{job})

	require.Len(t, missing, 1)
	assert.Equal(t, 1, missing[0].Frequency, "one job demands it, however often it is listed")
}

func TestIdentify_CaseInsensitive(t *testing.T) {
	resume := []types.Skill{types.NewSkill("DOCKER", "", true, 1)}
	jobs := []types.Job{jobWith("Dev", "docker", "python")}

	matching, missing := Identify(resume, jobs)

	require.Len(t, matching, 1)
	require.Len(t, missing, 1)
	assert.Equal(t, "Python", missing[0].Name)
}

func TestIdentify_EmptyInputs(t *testing.T) {
	matching, missing := Identify(nil, nil)
	assert.Empty(t, matching)
	assert.Empty(t, missing)

	matching, missing = Identify(nil, []types.Job{jobWith("Dev", "go")})
	assert.Empty(t, matching)
	require.Len(t, missing, 1)
	assert.Equal(t, 1, missing[0].Frequency)
}
