package cluster

import (
	"math"

	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vectorize"
)

// Scoring methods reported in MatchScore.Method.
const (
	MethodKMeans  = "kmeans"
	MethodOverlap = "simple_overlap"
)

// MatchScore is the outcome of scoring a resume against a job corpus. The
// two paths share one type: a clustering result carries a cluster id, the
// overlap fallback leaves ClusterID nil and sets Warning to say why.
type MatchScore struct {
	Score             float64 `json:"score"`
	Method            string  `json:"method"`
	ClusterID         *int    `json:"cluster_id,omitempty"`
	JobsInSameCluster int     `json:"jobs_in_same_cluster"`
	Warning           string  `json:"warning,omitempty"`
}

// Scorer computes match scores with a fixed clustering configuration.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score clusters the resume vector with the job vectors and reports the
// share of jobs landing in the resume's cluster. When the vectors cannot be
// built or clustered, it degrades to the skill-set overlap score instead of
// failing the analysis.
func (s *Scorer) Score(resumeSkills []types.Skill, jobs []types.Job) MatchScore {
	if len(resumeSkills) == 0 {
		return s.fallback(resumeSkills, jobs, "resume has no extracted skills")
	}
	if len(jobs) == 0 {
		return s.fallback(resumeSkills, jobs, "no jobs to compare against")
	}

	matrix, err := vectorize.Build(resumeSkills, jobs)
	if err != nil {
		return s.fallback(resumeSkills, jobs, err.Error())
	}

	rows := matrix.Rows()
	standardize(rows)
	labels, _, err := kMeans(rows, s.cfg)
	if err != nil {
		return s.fallback(resumeSkills, jobs, err.Error())
	}

	resumeCluster := labels[0]
	same := 0
	for _, label := range labels[1:] {
		if label == resumeCluster {
			same++
		}
	}
	score := 0.0
	if len(jobs) > 0 {
		score = round2(float64(same) / float64(len(jobs)) * 100)
	}
	return MatchScore{
		Score:             score,
		Method:            MethodKMeans,
		ClusterID:         &resumeCluster,
		JobsInSameCluster: same,
	}
}

func (s *Scorer) fallback(resumeSkills []types.Skill, jobs []types.Job, reason string) MatchScore {
	return MatchScore{
		Score:   SimpleOverlap(resumeSkills, jobs),
		Method:  MethodOverlap,
		Warning: "clustering unavailable, using skill overlap: " + reason,
	}
}

// SimpleOverlap scores the resume as the fraction of distinct skills demanded
// anywhere in the corpus that the candidate already has.
func SimpleOverlap(resumeSkills []types.Skill, jobs []types.Job) float64 {
	demanded := make(map[string]bool)
	for _, job := range jobs {
		for _, s := range job.RequiredSkills {
			demanded[s.Key()] = true
		}
	}
	if len(demanded) == 0 {
		return 0
	}

	have := types.SkillNameSet(resumeSkills)
	overlap := 0
	for key := range demanded {
		if have[key] {
			overlap++
		}
	}
	return round2(float64(overlap) / float64(len(demanded)) * 100)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
