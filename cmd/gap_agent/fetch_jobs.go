package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/jobsource"
	"github.com/jonathan/skillgap-analyzer/internal/observability"
)

var fetchJobsCmd = &cobra.Command{
	Use:   "fetch-jobs",
	Short: "Fetch a job corpus for a domain",
	Long:  "Fetches job postings from the Adzuna API (or generated sample jobs when credentials are missing) and prints a summary.",
	RunE:  runFetchJobs,
}

var (
	fetchJobsDomain       string
	fetchJobsCount        int
	fetchJobsOutput       string
	fetchJobsAdzunaAppID  string
	fetchJobsAdzunaAPIKey string
)

func init() {
	fetchJobsCmd.Flags().StringVarP(&fetchJobsDomain, "domain", "d", config.DefaultJobDomain, "Job domain to search for")
	fetchJobsCmd.Flags().IntVar(&fetchJobsCount, "count", config.DefaultJobCount, "Number of jobs to fetch")
	fetchJobsCmd.Flags().StringVarP(&fetchJobsOutput, "out", "o", "", "Path to output jobs JSON file (optional)")
	fetchJobsCmd.Flags().StringVar(&fetchJobsAdzunaAppID, "adzuna-app-id", "", "Adzuna application id (optional, defaults to ADZUNA_APP_ID env var)")
	fetchJobsCmd.Flags().StringVar(&fetchJobsAdzunaAPIKey, "adzuna-api-key", "", "Adzuna application key (optional, defaults to ADZUNA_API_KEY env var)")

	rootCmd.AddCommand(fetchJobsCmd)
}

func runFetchJobs(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	appID := fetchJobsAdzunaAppID
	if appID == "" {
		appID = os.Getenv("ADZUNA_APP_ID")
	}
	apiKey := fetchJobsAdzunaAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("ADZUNA_API_KEY")
	}

	jobs, warning, err := jobsource.NewFetcher(appID, apiKey).FetchJobs(ctx, fetchJobsDomain, fetchJobsCount)
	if err != nil {
		return fmt.Errorf("failed to fetch jobs: %w", err)
	}
	if warning != "" {
		fmt.Printf("Warning: %s\n", warning)
	}

	observability.NewPrinter(os.Stdout).PrintJobs(jobs)

	if fetchJobsOutput != "" {
		data, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal jobs: %w", err)
		}
		if err := os.WriteFile(fetchJobsOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write jobs file: %w", err)
		}
		fmt.Printf("Jobs written to %s\n", fetchJobsOutput)
	}
	return nil
}
