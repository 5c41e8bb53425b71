package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/catalog"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/plan"
	"github.com/jonathan/skillgap-analyzer/internal/schemas"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

var buildPlanCmd = &cobra.Command{
	Use:   "build-plan",
	Short: "Build a learning plan from an analysis result",
	Long:  "Reads an AnalysisResult JSON file (as written by analyze) and renders the 4-week learning plan, using the database resource catalog when --db-url is set.",
	RunE:  runBuildPlan,
}

var (
	buildPlanInput       string
	buildPlanOutput      string
	buildPlanDatabaseURL string
)

func init() {
	buildPlanCmd.Flags().StringVarP(&buildPlanInput, "in", "i", "", "Path to AnalysisResult JSON file (required)")
	buildPlanCmd.Flags().StringVarP(&buildPlanOutput, "out", "o", "", "Path to output plan text file (optional, prints to stdout otherwise)")
	buildPlanCmd.Flags().StringVar(&buildPlanDatabaseURL, "db-url", "", "PostgreSQL connection URL for the resource catalog (optional, defaults to DATABASE_URL env var)")

	if err := buildPlanCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(buildPlanCmd)
}

func runBuildPlan(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "analysis_result.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, buildPlanInput); err != nil {
			return fmt.Errorf("input failed schema validation: %w", err)
		}
	}

	content, err := os.ReadFile(buildPlanInput)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}
	var result types.AnalysisResult
	if err := json.Unmarshal(content, &result); err != nil {
		return fmt.Errorf("failed to unmarshal analysis JSON: %w", err)
	}

	databaseURL := buildPlanDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	var cat catalog.Catalog = catalog.NewMemoryCatalog()
	if databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Using the built-in resource catalog...\n")
		} else {
			defer database.Close()
			cat = database
		}
	}

	report, _, warnings := plan.NewGenerator(cat).Generate(ctx, &result)
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	if buildPlanOutput != "" {
		if err := os.WriteFile(buildPlanOutput, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write plan file: %w", err)
		}
		fmt.Printf("Plan written to %s\n", buildPlanOutput)
		return nil
	}

	fmt.Println(report)
	return nil
}
