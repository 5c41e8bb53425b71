package types

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AnalysisResult aggregates the outcome of one skill-gap analysis run.
//
// MatchingSkills and MissingSkills partition the set of distinct skill names
// required across the analyzed jobs: a given skill name appears in at most one
// of the two lists. ClusterID is nil when the score came from the overlap
// fallback rather than clustering.
type AnalysisResult struct {
	Resume               *Resume            `json:"resume"`
	AnalyzedJobs         []Job              `json:"analyzed_jobs,omitempty"`
	MatchingSkills       []Skill            `json:"matching_skills"`
	MissingSkills        []Skill            `json:"missing_skills"`
	MatchPercentage      float64            `json:"match_percentage"`
	RecommendedResources []LearningResource `json:"recommended_resources,omitempty"`
	LearningPath         string             `json:"learning_path,omitempty"`
	ClusterID            *int               `json:"cluster_id,omitempty"`
	JobsInSameCluster    int                `json:"jobs_in_same_cluster"`
}

// TotalJobsAnalyzed returns the number of jobs in the analysis.
func (a *AnalysisResult) TotalJobsAnalyzed() int {
	return len(a.AnalyzedJobs)
}

// AddMatchingSkill appends a skill to the matching list unless one with the
// same name is already present.
func (a *AnalysisResult) AddMatchingSkill(skill Skill) {
	for i := range a.MatchingSkills {
		if a.MatchingSkills[i].Matches(&skill) {
			return
		}
	}
	a.MatchingSkills = append(a.MatchingSkills, skill)
}

// AddMissingSkill appends a skill to the missing list. If one with the same
// name is present its frequency is incremented; otherwise the skill is added
// with frequency 1 ("required by one job so far").
func (a *AnalysisResult) AddMissingSkill(skill Skill) {
	for i := range a.MissingSkills {
		if a.MissingSkills[i].Matches(&skill) {
			a.MissingSkills[i].Frequency++
			return
		}
	}
	skill.Frequency = 1
	a.MissingSkills = append(a.MissingSkills, skill)
}

// SortMissingByDemand sorts the missing skills by frequency descending,
// keeping encounter order for ties.
func (a *AnalysisResult) SortMissingByDemand() {
	sort.SliceStable(a.MissingSkills, func(i, j int) bool {
		return a.MissingSkills[i].Frequency > a.MissingSkills[j].Frequency
	})
}

// TopMissingSkills returns the n most demanded missing skills.
func (a *AnalysisResult) TopMissingSkills(n int) []Skill {
	sorted := make([]Skill, len(a.MissingSkills))
	copy(sorted, a.MissingSkills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequency > sorted[j].Frequency
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CoverageMatchPercentage recomputes MatchPercentage as the share of distinct
// job-required skills the resume covers, rounded to 2 decimals.
func (a *AnalysisResult) CoverageMatchPercentage() float64 {
	total := len(a.MatchingSkills) + len(a.MissingSkills)
	if total == 0 {
		return 0
	}
	pct := float64(len(a.MatchingSkills)) / float64(total) * 100
	a.MatchPercentage = math.Round(pct*100) / 100
	return a.MatchPercentage
}

// Summary returns a one-line summary of the analysis.
func (a *AnalysisResult) Summary() string {
	return fmt.Sprintf("Analyzed %d jobs: %.2f%% match, %d skills found, %d skills to learn",
		a.TotalJobsAnalyzed(), a.MatchPercentage, len(a.MatchingSkills), len(a.MissingSkills))
}

// DetailedSummary returns a multi-line report of the analysis.
func (a *AnalysisResult) DetailedSummary() string {
	var sb strings.Builder
	rule := strings.Repeat("=", 60)
	sb.WriteString(rule + "\n")
	sb.WriteString("ANALYSIS SUMMARY\n")
	sb.WriteString(rule + "\n")
	if a.Resume != nil {
		sb.WriteString(fmt.Sprintf("Resume: %s\n", a.Resume.Filename))
	}
	sb.WriteString(fmt.Sprintf("Jobs Analyzed: %d\n", a.TotalJobsAnalyzed()))
	sb.WriteString(fmt.Sprintf("Overall Match: %.2f%%\n", a.MatchPercentage))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matching Skills (%d):\n  %s\n", len(a.MatchingSkills), JoinSkillNames(a.MatchingSkills)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Missing Skills (%d):\n  %s\n", len(a.MissingSkills), JoinSkillNames(a.MissingSkills)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Recommended Resources: %d\n", len(a.RecommendedResources)))
	sb.WriteString(rule)
	return sb.String()
}
