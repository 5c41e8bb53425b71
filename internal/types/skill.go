// Package types provides type definitions for structured data used throughout the skill-gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Skill represents a single named skill (e.g. "Python", "Docker").
//
// The meaning of Frequency depends on the stage that produced the skill:
// during extraction it is the number of whole-word occurrences in the source
// text; during gap aggregation it is the number of distinct jobs requiring
// the skill. The two counters must not be conflated.
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	IsTechnical bool   `json:"is_technical"`
	Frequency   int    `json:"frequency"`
}

// NormalizeSkillKey returns the identity key for a skill name: trimmed and
// lowercased. Two skills are the same skill iff their keys are equal. Use this
// wherever skills are compared, hashed, or deduplicated.
func NormalizeSkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SkillDisplayName returns the canonical display form of a skill name:
// trimmed, with each space-separated word capitalized.
func SkillDisplayName(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// NewSkill creates a Skill with a normalized display name.
func NewSkill(name, category string, technical bool, frequency int) Skill {
	return Skill{
		Name:        SkillDisplayName(name),
		Category:    category,
		IsTechnical: technical,
		Frequency:   frequency,
	}
}

// Key returns the skill's identity key.
func (s *Skill) Key() string {
	return NormalizeSkillKey(s.Name)
}

// Matches reports whether two skills are the same skill (case-insensitive on name).
func (s *Skill) Matches(other *Skill) bool {
	return s.Key() == other.Key()
}

// MatchesName reports whether the skill matches a given name (case-insensitive).
func (s *Skill) MatchesName(name string) bool {
	return s.Key() == NormalizeSkillKey(name)
}

// SkillNameSet returns the set of identity keys for a skill list.
func SkillNameSet(skills []Skill) map[string]bool {
	set := make(map[string]bool, len(skills))
	for i := range skills {
		set[skills[i].Key()] = true
	}
	return set
}

// SkillNames returns the display names of a skill list, in order.
func SkillNames(skills []Skill) []string {
	names := make([]string, len(skills))
	for i := range skills {
		names[i] = skills[i].Name
	}
	return names
}

// JoinSkillNames returns a comma-separated list of skill names.
func JoinSkillNames(skills []Skill) string {
	return strings.Join(SkillNames(skills), ", ")
}
