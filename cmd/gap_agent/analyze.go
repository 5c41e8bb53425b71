package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline"
	"github.com/jonathan/skillgap-analyzer/internal/schemas"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full skill-gap analysis pipeline end-to-end",
	Long: `Orchestrates the entire analysis: resume validation -> text extraction -> skill extraction -> job fetch -> gap identification -> clustering match score -> learning plan -> persistence.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values, which override environment variables.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath   string
	analyzeResume       string
	analyzeDomain       string
	analyzeCount        int
	analyzeOutputDir    string
	analyzeAPIKey       string
	analyzeAdzunaAppID  string
	analyzeAdzunaAPIKey string
	analyzeDatabaseURL  string
	analyzeClusters     int
	analyzeSeed         int64
	analyzeVerbose      bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (PDF, text, or HTML)")
	analyzeCommand.Flags().StringVarP(&analyzeDomain, "domain", "d", "", "Job domain to analyze against (default \"Software Developer\")")
	analyzeCommand.Flags().IntVar(&analyzeCount, "count", 0, "Number of jobs to fetch (default 50)")
	analyzeCommand.Flags().StringVarP(&analyzeOutputDir, "output", "o", "", "Directory for the learning path report and analysis JSON")
	analyzeCommand.Flags().IntVar(&analyzeClusters, "clusters", 0, "Number of k-means clusters (default 3)")
	analyzeCommand.Flags().Int64Var(&analyzeSeed, "seed", 0, "Clustering random seed (default 42)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// Credentials can be passed as flags, or read from the environment
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for model-assisted skill detection (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().StringVar(&analyzeAdzunaAppID, "adzuna-app-id", "", "Adzuna application id (optional, defaults to ADZUNA_APP_ID env var)")
	analyzeCommand.Flags().StringVar(&analyzeAdzunaAPIKey, "adzuna-api-key", "", "Adzuna application key (optional, defaults to ADZUNA_API_KEY env var)")
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("domain") {
		cfg.JobDomain = analyzeDomain
	}
	if cmd.Flags().Changed("count") {
		cfg.JobCount = analyzeCount
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("adzuna-app-id") {
		cfg.AdzunaAppID = analyzeAdzunaAppID
	}
	if cmd.Flags().Changed("adzuna-api-key") {
		cfg.AdzunaAPIKey = analyzeAdzunaAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("clusters") {
		cfg.Clusters = analyzeClusters
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = analyzeSeed
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Fill remaining gaps from the environment, then defaults
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Config{
		JobDomain: config.DefaultJobDomain,
		JobCount:  config.DefaultJobCount,
	})

	// Step 4: Validate
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, warnings, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		ResumePath:   cfg.Resume,
		JobDomain:    cfg.JobDomain,
		JobCount:     cfg.JobCount,
		OutputDir:    cfg.OutputDir,
		APIKey:       cfg.APIKey,
		AdzunaAppID:  cfg.AdzunaAppID,
		AdzunaAPIKey: cfg.AdzunaAPIKey,
		DatabaseURL:  cfg.DatabaseURL,
		Clusters:     cfg.Clusters,
		Seed:         cfg.Seed,
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(result.LearningPath)

	if cfg.OutputDir != "" {
		if err := writeAnalysisJSON(cfg.OutputDir, result); err != nil {
			fmt.Printf("Warning: failed to write analysis JSON: %v\n", err)
		}
	}
	if len(warnings) > 0 {
		fmt.Printf("Completed with %d warning(s).\n", len(warnings))
	}
	return nil
}

// writeAnalysisJSON writes the full analysis result under dir and checks it
// against the shipped schema when the schema file can be found.
func writeAnalysisJSON(dir string, result *types.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "analysis.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "analysis_result.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return fmt.Errorf("written analysis failed schema validation: %w", err)
		}
	}

	fmt.Printf("Analysis written to %s\n", path)
	return nil
}
