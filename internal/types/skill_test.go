package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase unchanged", "python", "python"},
		{"uppercase lowered", "PYTHON", "python"},
		{"mixed case lowered", "PyThOn", "python"},
		{"whitespace trimmed", "  Docker  ", "docker"},
		{"multi-word", "Machine Learning", "machine learning"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillKey(tt.input))
		})
	}
}

func TestSkillDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"python", "Python"},
		{"machine learning", "Machine Learning"},
		{"  sql  ", "Sql"},
		{"SPRING BOOT", "Spring Boot"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SkillDisplayName(tt.input))
	}
}

func TestSkillMatches_CaseInsensitive(t *testing.T) {
	a := NewSkill("python", "Programming Language", true, 1)
	b := NewSkill("PYTHON", "Programming Language", true, 3)

	assert.True(t, a.Matches(&b))
	assert.True(t, a.MatchesName("  Python "))
	assert.False(t, a.MatchesName("Java"))
}

func TestSkillNameSet(t *testing.T) {
	skills := []Skill{
		NewSkill("Python", "Programming Language", true, 1),
		NewSkill("SQL", "Database", true, 1),
	}
	set := SkillNameSet(skills)

	assert.True(t, set["python"])
	assert.True(t, set["sql"])
	assert.False(t, set["docker"])
}

func TestJoinSkillNames(t *testing.T) {
	skills := []Skill{
		NewSkill("Python", "Programming Language", true, 1),
		NewSkill("Git", "Version Control", true, 1),
	}
	assert.Equal(t, "Python, Git", JoinSkillNames(skills))
}
