package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeAddSkill_DeduplicatesByName(t *testing.T) {
	resume := &Resume{Filename: "test.pdf", FileType: FileTypePDF}

	resume.AddSkill(NewSkill("Python", "Programming Language", true, 1))
	resume.AddSkill(NewSkill("Java", "Programming Language", true, 1))
	resume.AddSkill(NewSkill("PYTHON", "Programming Language", true, 1))

	require.Len(t, resume.Skills, 2)
	assert.Equal(t, "Python", resume.Skills[0].Name)
	assert.Equal(t, 2, resume.Skills[0].Frequency, "duplicate add should increment frequency")
	assert.Equal(t, 1, resume.Skills[1].Frequency)
}

func TestResumeHasSkill(t *testing.T) {
	resume := &Resume{Filename: "test.pdf"}
	resume.AddSkill(NewSkill("Docker", "DevOps Tool", true, 1))

	assert.True(t, resume.HasSkill("docker"))
	assert.True(t, resume.HasSkill(" DOCKER "))
	assert.False(t, resume.HasSkill("Kubernetes"))
}

func TestResumeGetSkill(t *testing.T) {
	resume := &Resume{Filename: "test.pdf"}
	resume.AddSkill(NewSkill("Git", "Version Control", true, 2))

	got := resume.GetSkill("git")
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Frequency)
	assert.Nil(t, resume.GetSkill("svn"))
}

func TestResumeSkillPartition(t *testing.T) {
	resume := &Resume{Filename: "test.pdf"}
	resume.AddSkill(NewSkill("Python", "Programming Language", true, 1))
	resume.AddSkill(NewSkill("Leadership", "Soft Skill", false, 1))
	resume.AddSkill(NewSkill("Teamwork", "Soft Skill", false, 1))

	assert.Len(t, resume.TechnicalSkills(), 1)
	assert.Len(t, resume.SoftSkills(), 2)
}
