// Package plan builds the four-week learning plan from a gap analysis:
// prioritized skills, resources per skill, and weekly milestones, rendered
// as a text report.
package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/skillgap-analyzer/internal/catalog"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	// MaxSkills caps how many missing skills make the plan.
	MaxSkills = 8
	// SkillsPerWeek is the study load per week.
	SkillsPerWeek = 2
	// TotalWeeks is the plan length.
	TotalWeeks = 4
	// ResourcesPerSkill is how many resources are fetched per skill.
	ResourcesPerSkill = 3
)

// Week is one week of the plan: the skills to focus on, their resources,
// and the milestones to hit.
type Week struct {
	Number     int                                 `json:"week_number"`
	Skills     []types.Skill                       `json:"skills"`
	Resources  map[string][]types.LearningResource `json:"resources"`
	Milestones []string                            `json:"milestones"`
}

// Generator assembles learning plans against a resource catalog.
type Generator struct {
	catalog catalog.Catalog
	now     func() time.Time
}

func NewGenerator(cat catalog.Catalog) *Generator {
	return &Generator{catalog: cat, now: time.Now}
}

// Generate renders the learning plan for an analysis and returns the weekly
// breakdown it was built from. With no missing skills it returns the
// congratulatory report and no weeks. Recommended resources are appended to
// the result as a side effect, mirroring what the report shows. Warnings
// carry resource lookups that failed; a failed lookup degrades that skill to
// generic search advice rather than failing the plan.
func (g *Generator) Generate(ctx context.Context, result *types.AnalysisResult) (string, []Week, []string) {
	if len(result.MissingSkills) == 0 {
		return g.renderNoGaps(result), nil, nil
	}

	priority := result.TopMissingSkills(MaxSkills)

	var warnings []string
	resources := make(map[string][]types.LearningResource, len(priority))
	for _, skill := range priority {
		found, err := g.catalog.ResourcesForSkill(ctx, skill.Name, ResourcesPerSkill)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("resource lookup failed for %s: %v", skill.Name, err))
			continue
		}
		resources[skill.Key()] = found
	}

	weeks := BuildWeeks(priority, resources)
	for _, week := range weeks {
		for _, skill := range week.Skills {
			result.RecommendedResources = append(result.RecommendedResources, week.Resources[skill.Key()]...)
		}
	}
	return g.render(weeks, result), weeks, warnings
}

// BuildWeeks distributes prioritized skills across the plan weeks, two per
// week in priority order. Weeks past the last skill are omitted.
func BuildWeeks(priority []types.Skill, resources map[string][]types.LearningResource) []Week {
	var weeks []Week
	for number := 1; number <= TotalWeeks; number++ {
		start := (number - 1) * SkillsPerWeek
		if start >= len(priority) {
			break
		}
		end := start + SkillsPerWeek
		if end > len(priority) {
			end = len(priority)
		}
		skills := priority[start:end]

		week := Week{
			Number:     number,
			Skills:     skills,
			Resources:  make(map[string][]types.LearningResource, len(skills)),
			Milestones: Milestones(skills),
		}
		for _, skill := range skills {
			week.Resources[skill.Key()] = resources[skill.Key()]
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Milestones returns the achievement milestones for a week's skills: two per
// skill plus the standing documentation and resume updates.
func Milestones(skills []types.Skill) []string {
	milestones := make([]string, 0, 2*len(skills)+2)
	for _, skill := range skills {
		milestones = append(milestones, fmt.Sprintf("Complete %s tutorial/course", skill.Name))
		milestones = append(milestones, fmt.Sprintf("Build a small project using %s", skill.Name))
	}
	milestones = append(milestones, "Document your learning progress")
	milestones = append(milestones, "Update your resume with new skills")
	return milestones
}
