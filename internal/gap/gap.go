// Package gap partitions the demand side of a job corpus against the skills
// a candidate already has.
package gap

import (
	"sort"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Identify aggregates every job's required skills into one demand record per
// distinct skill name, then splits the records into skills the candidate has
// (matching) and skills they lack (missing). Frequency on both sides is the
// number of analyzed jobs demanding the skill, the demand signal later stages
// rank by.
func Identify(resumeSkills []types.Skill, jobs []types.Job) (matching, missing []types.Skill) {
	idx := make(map[string]int)
	var demanded []types.Skill
	for _, job := range jobs {
		// A skill listed twice by one job still counts that job once.
		inThisJob := make(map[string]bool)
		for _, required := range job.RequiredSkills {
			key := required.Key()
			if inThisJob[key] {
				continue
			}
			inThisJob[key] = true
			if i, ok := idx[key]; ok {
				demanded[i].Frequency++
				continue
			}
			skill := required
			skill.Frequency = 1
			idx[key] = len(demanded)
			demanded = append(demanded, skill)
		}
	}

	have := types.SkillNameSet(resumeSkills)
	for _, skill := range demanded {
		if have[skill.Key()] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	// Demand-ranked, stable so equal-demand skills keep corpus order.
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Frequency > missing[j].Frequency
	})
	return matching, missing
}
