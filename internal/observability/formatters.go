// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/cluster"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a summary of the parsed resume and its skills.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s (%s)\n", resume.Filename, resume.FileType))
	if resume.UserName != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.UserName))
	}
	if resume.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.Email))
	}
	sb.WriteString(fmt.Sprintf("Text:   %d characters\n", len(resume.ExtractedText)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(resume.Skills)))
	count := min(len(resume.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := resume.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s, seen %dx)\n", skill.Name, skill.Category, skill.Frequency))
	}
	if len(resume.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs a sample of the fetched job corpus.
func (p *Printer) PrintJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs fetched: %d\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s at %s\n", i+1, job.Title, job.Company))
		if len(job.RequiredSkills) > 0 {
			skills := types.JoinSkillNames(job.RequiredSkills)
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Requires: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("JOB CORPUS", sb.String())
}

// PrintJobMatches outputs the per-job match breakdown, best fits first.
func (p *Printer) PrintJobMatches(resumeSkills []types.Skill, jobs []types.Job) {
	if len(jobs) == 0 {
		return
	}

	type jobMatch struct {
		job     types.Job
		percent float64
	}
	matches := make([]jobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, jobMatch{job: job, percent: job.MatchPercentage(resumeSkills)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].percent > matches[j].percent
	})

	var sb strings.Builder
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%.2f%%  %s at %s\n", m.percent, m.job.Title, m.job.Company))
		if missing := m.job.MissingSkills(resumeSkills); len(missing) > 0 {
			names := types.JoinSkillNames(missing)
			if len(names) > 40 {
				names = names[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", names))
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more jobs\n", len(matches)-maxItemsToShow))
	}

	p.printBox("BEST-FIT JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchScore outputs the clustering match score and its method.
func (p *Printer) PrintMatchScore(score cluster.MatchScore) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %.2f%%\n", score.Score))
	sb.WriteString(fmt.Sprintf("Method:  %s\n", score.Method))
	if score.ClusterID != nil {
		sb.WriteString(fmt.Sprintf("Cluster: %d (%d jobs share it)\n", *score.ClusterID, score.JobsInSameCluster))
	}
	if score.Warning != "" {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", score.Warning))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapSummary outputs matching and missing skills from the analysis.
func (p *Printer) PrintGapSummary(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matching skills: %d\n", len(result.MatchingSkills)))
	sb.WriteString(fmt.Sprintf("Missing skills:  %d\n", len(result.MissingSkills)))
	sb.WriteString("\n")

	if len(result.MissingSkills) > 0 {
		sb.WriteString("Top gaps by demand:\n")
		count := min(len(result.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (wanted by %d jobs)\n", skill.Name, skill.Frequency))
		}
		if len(result.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("✅ No skill gaps found\n")
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs non-fatal warnings accumulated during a run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("WARNINGS", sb.String())
}
