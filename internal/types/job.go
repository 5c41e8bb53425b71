package types

import "math"

// Job represents a job posting from the market.
type Job struct {
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Description    string  `json:"description,omitempty"`
	RequiredSkills []Skill `json:"required_skills"`
	Location       string  `json:"location,omitempty"`
	Salary         string  `json:"salary,omitempty"`
	URL            string  `json:"url,omitempty"`
	PostedDate     string  `json:"posted_date,omitempty"`
}

// AddRequiredSkill adds a required skill to the job. If a matching skill
// already exists its frequency is incremented instead of inserting a duplicate.
func (j *Job) AddRequiredSkill(skill Skill) {
	for i := range j.RequiredSkills {
		if j.RequiredSkills[i].Matches(&skill) {
			j.RequiredSkills[i].Frequency++
			return
		}
	}
	j.RequiredSkills = append(j.RequiredSkills, skill)
}

// RequiresSkill reports whether the job requires a skill by name (case-insensitive).
func (j *Job) RequiresSkill(name string) bool {
	for i := range j.RequiredSkills {
		if j.RequiredSkills[i].MatchesName(name) {
			return true
		}
	}
	return false
}

// MatchPercentage returns how well a candidate's skills cover this job's
// requirements, as a percentage rounded to 2 decimals.
func (j *Job) MatchPercentage(candidateSkills []Skill) float64 {
	if len(j.RequiredSkills) == 0 {
		return 0
	}
	have := SkillNameSet(candidateSkills)
	matching := 0
	for i := range j.RequiredSkills {
		if have[j.RequiredSkills[i].Key()] {
			matching++
		}
	}
	pct := float64(matching) / float64(len(j.RequiredSkills)) * 100
	return math.Round(pct*100) / 100
}

// MatchingSkills returns the job's required skills that the candidate has.
func (j *Job) MatchingSkills(candidateSkills []Skill) []Skill {
	have := SkillNameSet(candidateSkills)
	var out []Skill
	for _, s := range j.RequiredSkills {
		if have[s.Key()] {
			out = append(out, s)
		}
	}
	return out
}

// MissingSkills returns the job's required skills that the candidate lacks.
func (j *Job) MissingSkills(candidateSkills []Skill) []Skill {
	have := SkillNameSet(candidateSkills)
	var out []Skill
	for _, s := range j.RequiredSkills {
		if !have[s.Key()] {
			out = append(out, s)
		}
	}
	return out
}
