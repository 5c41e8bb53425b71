// Package vectorize turns skill sets into fixed-width binary feature vectors
// over a shared vocabulary, the representation the clustering stage consumes.
package vectorize

import (
	"errors"
	"sort"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ErrEmptyVocabulary is returned when neither the resume nor any job
// contributed a skill, leaving nothing to vectorize over.
var ErrEmptyVocabulary = errors.New("vectorize: no skills in resume or job corpus")

// BuildVocabulary collects every distinct skill key across the resume and
// the job corpus and returns them sorted, so vector columns have a stable
// meaning independent of input order.
func BuildVocabulary(resumeSkills []types.Skill, jobs []types.Job) ([]string, error) {
	seen := make(map[string]bool)
	for _, s := range resumeSkills {
		seen[s.Key()] = true
	}
	for _, job := range jobs {
		for _, s := range job.RequiredSkills {
			seen[s.Key()] = true
		}
	}
	if len(seen) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(seen))
	for key := range seen {
		vocab = append(vocab, key)
	}
	sort.Strings(vocab)
	return vocab, nil
}

// Vector encodes a skill set as a binary presence vector over vocab.
// Skills outside the vocabulary are ignored.
func Vector(skills []types.Skill, vocab []string) []float64 {
	index := make(map[string]int, len(vocab))
	for i, key := range vocab {
		index[key] = i
	}
	vec := make([]float64, len(vocab))
	for _, s := range skills {
		if i, ok := index[s.Key()]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// Matrix holds the stacked feature vectors for one analysis: the resume row
// followed by one row per job, all over the same vocabulary.
type Matrix struct {
	Vocabulary []string
	Resume     []float64
	Jobs       [][]float64
}

// Build vectorizes the resume and every job over a shared vocabulary.
func Build(resumeSkills []types.Skill, jobs []types.Job) (*Matrix, error) {
	vocab, err := BuildVocabulary(resumeSkills, jobs)
	if err != nil {
		return nil, err
	}
	m := &Matrix{
		Vocabulary: vocab,
		Resume:     Vector(resumeSkills, vocab),
		Jobs:       make([][]float64, 0, len(jobs)),
	}
	for _, job := range jobs {
		m.Jobs = append(m.Jobs, Vector(job.RequiredSkills, vocab))
	}
	return m, nil
}

// Rows returns all vectors with the resume first, the layout the clustering
// stage expects.
func (m *Matrix) Rows() [][]float64 {
	rows := make([][]float64, 0, len(m.Jobs)+1)
	rows = append(rows, m.Resume)
	rows = append(rows, m.Jobs...)
	return rows
}
