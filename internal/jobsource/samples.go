package jobsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

type sampleTemplate struct {
	title   string
	company string
	salary  string
	skills  []string
}

var (
	softwareTemplates = []sampleTemplate{
		{"Senior Software Engineer", "Tech Corp", "$120k-$160k", []string{"Python", "Java", "Docker", "Git", "SQL"}},
		{"Python Developer", "Data Systems", "$100k-$130k", []string{"Python", "Django", "PostgreSQL", "Redis", "Git"}},
		{"Full Stack Developer", "StartupXYZ", "$95k-$125k", []string{"JavaScript", "React", "Node.js", "MongoDB", "Docker"}},
		{"Backend Engineer", "Scale Labs", "$110k-$145k", []string{"Go", "PostgreSQL", "Kubernetes", "Kafka", "Git"}},
	}
	dataTemplates = []sampleTemplate{
		{"Data Scientist", "AI Labs", "$130k-$170k", []string{"Python", "Machine Learning", "TensorFlow", "Pandas", "SQL"}},
		{"Machine Learning Engineer", "Vision Co", "$140k-$180k", []string{"Python", "PyTorch", "Docker", "Kubernetes", "AWS"}},
		{"Data Analyst", "Insight Inc", "$85k-$110k", []string{"SQL", "Python", "Pandas", "Data Analysis", "Matplotlib"}},
	}
	webTemplates = []sampleTemplate{
		{"Frontend Developer", "Web Studio", "$90k-$120k", []string{"JavaScript", "React", "TypeScript", "CSS", "HTML"}},
		{"UI Engineer", "Design Hub", "$95k-$125k", []string{"JavaScript", "Vue", "CSS", "Sass", "Git"}},
	}
	devopsTemplates = []sampleTemplate{
		{"DevOps Engineer", "Cloud Inc", "$115k-$150k", []string{"Docker", "Kubernetes", "AWS", "Terraform", "Jenkins"}},
		{"Site Reliability Engineer", "Uptime Systems", "$125k-$165k", []string{"Kubernetes", "Linux", "Bash", "Terraform", "CI/CD"}},
		{"Platform Engineer", "Infra Works", "$120k-$155k", []string{"Docker", "AWS", "Ansible", "Git", "Python"}},
	}
)

// SampleSource generates deterministic jobs for a query's domain, used when
// no job API is reachable. The same query and count always produce the same
// corpus, which keeps analyses reproducible offline.
type SampleSource struct{}

func NewSampleSource() *SampleSource { return &SampleSource{} }

// FetchJobs cycles through the domain's templates until count jobs exist.
func (s *SampleSource) FetchJobs(_ context.Context, query string, count int) ([]types.Job, error) {
	if count <= 0 {
		return nil, nil
	}
	templates := templatesForQuery(query)

	jobs := make([]types.Job, 0, count)
	for i := 0; i < count; i++ {
		t := templates[i%len(templates)]
		job := types.Job{
			Title:       t.title,
			Company:     t.company,
			Description: fmt.Sprintf("We are hiring a %s to join %s.", t.title, t.company),
			Location:    "USA",
			Salary:      t.salary,
			URL:         "https://example.com/job",
		}
		for _, name := range t.skills {
			job.AddRequiredSkill(types.NewSkill(name, "Technical", true, 1))
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func templatesForQuery(query string) []sampleTemplate {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "data") || strings.Contains(q, "machine learning"):
		return dataTemplates
	case strings.Contains(q, "devops") || strings.Contains(q, "sre") || strings.Contains(q, "reliability"):
		return devopsTemplates
	case strings.Contains(q, "web") || strings.Contains(q, "frontend"):
		return webTemplates
	default:
		return softwareTemplates
	}
}
