// Package main provides the entry point for the skill-gap analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gap_agent",
	Short: "Skill Gap Analyzer",
	Long:  "Skill Gap Analyzer extracts skills from a resume, compares them against current job market demand, and generates a personalized 4-week learning plan.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
