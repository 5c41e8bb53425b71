package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	// resourcesShown and milestonesShown cap what the report renders; the
	// plan data keeps everything.
	resourcesShown  = 2
	milestonesShown = 4

	heavyRule = "======================================================================"
	lightRule = "──────────────────────────────────────────────────────────────────────"
)

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func (g *Generator) render(weeks []Week, result *types.AnalysisResult) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(heavyRule)
	line("YOUR PERSONALIZED 4-WEEK LEARNING PATH")
	line(heavyRule)
	line("")
	line("Generated on: %s", g.now().Format("2006-01-02 15:04"))
	line("Overall Match: %s", formatPercent(result.MatchPercentage))
	line("Skills to Learn: %d", len(result.MissingSkills))
	line("")

	for _, week := range weeks {
		line(lightRule)
		line("📅 WEEK %d", week.Number)
		line(lightRule)
		line("")
		line("🎯 Focus Skills: %s", types.JoinSkillNames(week.Skills))
		line("")

		for _, skill := range week.Skills {
			line("📖 %s Learning Resources:", skill.Name)
			resources := week.Resources[skill.Key()]
			if len(resources) == 0 {
				line("   • Search online for '%s tutorial'", skill.Name)
				line("   • Check platforms: Udemy, Coursera, YouTube")
				line("")
				continue
			}
			for i, r := range resources {
				if i >= resourcesShown {
					break
				}
				line("   %d. %s (%s)", i+1, r.ResourceTitle, r.Platform)
				line("      ↳ %s", r.ResourceURL)
				if r.Rating > 0 {
					line("      ⭐ Rating: %.1f/5.0 | Duration: %d week(s) | Level: %s",
						r.Rating, r.DurationWeeks, r.DifficultyLevel)
				}
			}
			line("")
		}

		line("🏆 Week %d Milestones:", week.Number)
		for i, milestone := range week.Milestones {
			if i >= milestonesShown {
				break
			}
			line("   %d. %s", i+1, milestone)
		}
		line("")
	}

	line(heavyRule)
	line("💡 TIPS FOR SUCCESS")
	line(heavyRule)
	line("")
	line("• Dedicate 1-2 hours daily to learning")
	line("• Build projects to reinforce concepts")
	line("• Join online communities (Stack Overflow, Reddit, Discord)")
	line("• Document your progress on GitHub")
	line("• Update your resume as you learn new skills")
	line("• Don't rush - deep understanding beats speed")
	line("")
	line(heavyRule)
	line("Good luck on your learning journey! 🚀")
	b.WriteString(heavyRule)
	return b.String()
}

func (g *Generator) renderNoGaps(result *types.AnalysisResult) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(heavyRule)
	line("🎉 CONGRATULATIONS!")
	line(heavyRule)
	line("")
	line("Overall Match: %s", formatPercent(result.MatchPercentage))
	line("")
	line("You already have all the key skills required for the analyzed jobs!")
	line("Consider focusing on:")
	line("")
	line("• Advanced topics in your existing skills")
	line("• Emerging technologies in your field")
	line("• Leadership and soft skills development")
	line("• Building a strong portfolio of projects")
	line("")
	b.WriteString(heavyRule)
	return b.String()
}
