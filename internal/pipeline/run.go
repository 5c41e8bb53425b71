// Package pipeline provides the high-level orchestration for the skill-gap analysis process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillgap-analyzer/internal/catalog"
	"github.com/jonathan/skillgap-analyzer/internal/cluster"
	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/gap"
	"github.com/jonathan/skillgap-analyzer/internal/ingestion"
	"github.com/jonathan/skillgap-analyzer/internal/jobsource"
	"github.com/jonathan/skillgap-analyzer/internal/llm"
	"github.com/jonathan/skillgap-analyzer/internal/observability"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline/steps"
	"github.com/jonathan/skillgap-analyzer/internal/plan"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Percent  int    `json:"percent"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// JobFetcher produces the job corpus for a query, plus a warning when it had
// to degrade to a secondary source. *jobsource.Fetcher is the production
// implementation.
type JobFetcher interface {
	FetchJobs(ctx context.Context, query string, count int) ([]types.Job, string, error)
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath   string
	JobDomain    string
	JobCount     int
	OutputDir    string
	APIKey       string
	AdzunaAppID  string
	AdzunaAPIKey string
	DatabaseURL  string
	Clusters     int
	Seed         int64
	Verbose      bool

	// Fetcher and Catalog override the defaults, for tests and custom
	// deployments. When Catalog is nil a connected database serves
	// resources, falling back to the built-in seed set.
	Fetcher    JobFetcher
	Catalog    catalog.Catalog
	OnProgress ProgressCallback
}

// progressTracker walks the step registry: it numbers the stage banners from
// the registry order and refuses to record a step whose dependencies have not
// completed, so the orchestration cannot drift from the declared graph.
type progressTracker struct {
	onProgress ProgressCallback
	total      int
	position   map[string]int
	completed  map[string]bool
}

func newProgressTracker(onProgress ProgressCallback) *progressTracker {
	order := steps.Ordered()
	position := make(map[string]int, len(order))
	for i, def := range order {
		position[def.Name] = i + 1
	}
	return &progressTracker{
		onProgress: onProgress,
		total:      len(order),
		position:   position,
		completed:  make(map[string]bool, len(order)),
	}
}

func (p *progressTracker) begin(step, format string, args ...any) {
	fmt.Printf("Step %d/%d: %s\n", p.position[step], p.total, fmt.Sprintf(format, args...))
}

func (p *progressTracker) complete(step, message string, content any) error {
	if err := steps.ValidateDependencies(p.completed, step); err != nil {
		return err
	}
	p.completed[step] = true
	if p.onProgress == nil {
		return nil
	}
	def, _ := steps.Lookup(step)
	p.onProgress(ProgressEvent{
		Step:     step,
		Category: def.Category,
		Message:  message,
		Percent:  def.Percent,
		Content:  content,
	})
	return nil
}

// RunPipeline orchestrates the full skill-gap analysis: validate and parse
// the resume, extract skills, fetch the job corpus, identify gaps, score the
// match, build the learning plan, and persist the result. The returned
// warnings are the non-fatal degradations that occurred along the way.
func RunPipeline(ctx context.Context, opts RunOptions) (*types.AnalysisResult, []string, error) {
	if opts.JobDomain == "" {
		opts.JobDomain = config.DefaultJobDomain
	}
	if opts.JobCount <= 0 {
		opts.JobCount = config.DefaultJobCount
	}

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)
	tracker := newProgressTracker(opts.OnProgress)
	var warnings []string
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		warnings = append(warnings, msg)
		fmt.Printf("Warning: %s\n", msg)
	}

	// Initialize database connection if configured
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			warn("failed to connect to database: %v", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				warn("failed to migrate database: %v", err)
				database = nil
			} else if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Step 1: Validate the resume file
	tracker.begin(steps.StepValidateFile, "Validating resume file: %s...", opts.ResumePath)
	if err := ingestion.ValidateFile(opts.ResumePath); err != nil {
		return nil, warnings, fmt.Errorf("resume validation failed: %w", err)
	}
	if err := tracker.complete(steps.StepValidateFile,
		fmt.Sprintf("Validated %s", filepath.Base(opts.ResumePath)), nil); err != nil {
		return nil, warnings, err
	}

	// Step 2: Extract text from the resume
	tracker.begin(steps.StepExtractText, "Extracting resume text...")
	resume, err := ingestion.ParseResume(opts.ResumePath)
	if err != nil {
		return nil, warnings, fmt.Errorf("resume parsing failed: %w", err)
	}
	if err := tracker.complete(steps.StepExtractText,
		fmt.Sprintf("Extracted %d characters of text", len(resume.ExtractedText)), nil); err != nil {
		return nil, warnings, err
	}

	// Step 3: Extract skills
	tracker.begin(steps.StepExtractSkills, "Extracting skills...")
	detectors := []extraction.SkillDetector{&extraction.DictionaryDetector{}, extraction.NewTaggerDetector()}
	if opts.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			warn("model detector unavailable: %v", err)
		} else {
			defer client.Close()
			detectors = append(detectors, extraction.NewModelDetector(client))
		}
	}
	skills, extractWarnings := extraction.NewExtractor(detectors...).Extract(ctx, resume.ExtractedText)
	for _, w := range extractWarnings {
		warn("%s", w)
	}
	resume.Skills = skills
	if len(skills) == 0 {
		return nil, warnings, extraction.ErrNoSkills
	}
	if opts.Verbose {
		printer.PrintResume(resume)
	}
	if err := tracker.complete(steps.StepExtractSkills,
		fmt.Sprintf("Found %d skills", len(skills)), skills); err != nil {
		return nil, warnings, err
	}

	// Step 4: Fetch the job corpus
	tracker.begin(steps.StepFetchJobs, "Fetching %d %q jobs...", opts.JobCount, opts.JobDomain)
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = jobsource.NewFetcher(opts.AdzunaAppID, opts.AdzunaAPIKey)
	}
	jobs, fetchWarning, err := fetcher.FetchJobs(ctx, opts.JobDomain, opts.JobCount)
	if err != nil {
		return nil, warnings, fmt.Errorf("job fetch failed: %w", err)
	}
	if fetchWarning != "" {
		warn("%s", fetchWarning)
	}
	if len(jobs) == 0 {
		return nil, warnings, jobsource.ErrEmptyCorpus
	}
	if opts.Verbose {
		printer.PrintJobs(jobs)
	}
	if err := tracker.complete(steps.StepFetchJobs,
		fmt.Sprintf("Fetched %d jobs for %q", len(jobs), opts.JobDomain), nil); err != nil {
		return nil, warnings, err
	}

	// Step 5: Identify gaps and score the match
	tracker.begin(steps.StepClusterMatch, "Analyzing skill gaps and match score...")
	matching, missing := gap.Identify(resume.Skills, jobs)
	result := &types.AnalysisResult{
		Resume:         resume,
		AnalyzedJobs:   jobs,
		MatchingSkills: matching,
		MissingSkills:  missing,
	}

	cfg := cluster.DefaultConfig()
	if opts.Clusters > 0 {
		cfg.Clusters = opts.Clusters
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	score := cluster.NewScorer(cfg).Score(resume.Skills, jobs)
	result.MatchPercentage = score.Score
	result.ClusterID = score.ClusterID
	result.JobsInSameCluster = score.JobsInSameCluster
	if score.Warning != "" {
		warn("%s", score.Warning)
	}
	if opts.Verbose {
		printer.PrintMatchScore(score)
		printer.PrintGapSummary(result)
		printer.PrintJobMatches(resume.Skills, jobs)
	}
	if err := tracker.complete(steps.StepClusterMatch,
		fmt.Sprintf("Match score %.2f%% via %s (%d matching, %d missing skills)",
			score.Score, score.Method, len(matching), len(missing)), score); err != nil {
		return nil, warnings, err
	}

	// Step 6: Build the learning plan
	tracker.begin(steps.StepBuildPlan, "Building learning plan...")
	cat := opts.Catalog
	if cat == nil {
		if database != nil {
			cat = database
		} else {
			cat = catalog.NewMemoryCatalog()
		}
	}
	report, weeks, planWarnings := plan.NewGenerator(cat).Generate(ctx, result)
	for _, w := range planWarnings {
		warn("%s", w)
	}
	result.LearningPath = report
	if err := tracker.complete(steps.StepBuildPlan,
		fmt.Sprintf("Built %d-week learning plan covering %d skills",
			len(weeks), len(result.TopMissingSkills(plan.MaxSkills))), nil); err != nil {
		return nil, warnings, err
	}

	// Step 7: Persist results
	tracker.begin(steps.StepSaveResults, "Saving results...")
	if opts.OutputDir != "" {
		if err := writeLearningPath(opts.OutputDir, report); err != nil {
			warn("failed to write learning path file: %v", err)
		}
	}
	if database != nil {
		analysisID, err := database.SaveAnalysis(ctx, result)
		if err != nil {
			warn("failed to save analysis: %v", err)
		} else {
			if err := database.SaveLearningWeeks(ctx, analysisID, weeks); err != nil {
				warn("failed to save learning weeks: %v", err)
			}
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Saved analysis: %s\n", analysisID)
			}
		}
	}
	if err := tracker.complete(steps.StepSaveResults, "Saved analysis results", nil); err != nil {
		return nil, warnings, err
	}

	// Step 8: Done
	tracker.begin(steps.StepComplete, "Analysis complete. %s", result.Summary())
	if err := tracker.complete(steps.StepComplete, result.Summary(), result); err != nil {
		return nil, warnings, err
	}
	return result, warnings, nil
}

// writeLearningPath writes the rendered plan report under dir.
func writeLearningPath(dir, report string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "learning_path.txt"), []byte(report), 0o644)
}
