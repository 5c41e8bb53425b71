// Package steps defines the analysis pipeline's step metadata: names,
// categories, progress milestones, and the order steps must run in.
package steps

import (
	"fmt"
)

// Step names, in pipeline order.
const (
	StepValidateFile  = "validate_file"
	StepExtractText   = "extract_text"
	StepExtractSkills = "extract_skills"
	StepFetchJobs     = "fetch_jobs"
	StepClusterMatch  = "cluster_match"
	StepBuildPlan     = "build_plan"
	StepSaveResults   = "save_results"
	StepComplete      = "complete"
)

// Step categories.
const (
	CategoryIngestion   = "ingestion"
	CategoryExtraction  = "extraction"
	CategoryJobs        = "jobs"
	CategoryAnalysis    = "analysis"
	CategoryPlanning    = "planning"
	CategoryPersistence = "persistence"
	CategoryPipeline    = "pipeline"
)

// Definition describes one pipeline step. Percent is the overall progress
// milestone reported when the step completes.
type Definition struct {
	Name         string
	Category     string
	Percent      int
	Dependencies []string
}

// Registry holds all step definitions keyed by name.
var Registry = map[string]Definition{
	StepValidateFile: {
		Name:     StepValidateFile,
		Category: CategoryIngestion,
		Percent:  5,
	},
	StepExtractText: {
		Name:         StepExtractText,
		Category:     CategoryIngestion,
		Percent:      15,
		Dependencies: []string{StepValidateFile},
	},
	StepExtractSkills: {
		Name:         StepExtractSkills,
		Category:     CategoryExtraction,
		Percent:      30,
		Dependencies: []string{StepExtractText},
	},
	StepFetchJobs: {
		Name:         StepFetchJobs,
		Category:     CategoryJobs,
		Percent:      45,
		Dependencies: []string{StepValidateFile},
	},
	StepClusterMatch: {
		Name:         StepClusterMatch,
		Category:     CategoryAnalysis,
		Percent:      65,
		Dependencies: []string{StepExtractSkills, StepFetchJobs},
	},
	StepBuildPlan: {
		Name:         StepBuildPlan,
		Category:     CategoryPlanning,
		Percent:      80,
		Dependencies: []string{StepClusterMatch},
	},
	StepSaveResults: {
		Name:         StepSaveResults,
		Category:     CategoryPersistence,
		Percent:      90,
		Dependencies: []string{StepBuildPlan},
	},
	StepComplete: {
		Name:         StepComplete,
		Category:     CategoryPipeline,
		Percent:      100,
		Dependencies: []string{StepSaveResults},
	},
}

// order is the canonical execution order of the pipeline.
var order = []string{
	StepValidateFile,
	StepExtractText,
	StepExtractSkills,
	StepFetchJobs,
	StepClusterMatch,
	StepBuildPlan,
	StepSaveResults,
	StepComplete,
}

// Ordered returns the step definitions in execution order.
func Ordered() []Definition {
	defs := make([]Definition, 0, len(order))
	for _, name := range order {
		defs = append(defs, Registry[name])
	}
	return defs
}

// Lookup returns the definition for a step name.
func Lookup(name string) (Definition, bool) {
	def, ok := Registry[name]
	return def, ok
}

// DependencyError reports a step executed before its dependencies.
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in the
// completed set.
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := Registry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}
