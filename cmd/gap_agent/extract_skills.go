package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/ingestion"
	"github.com/jonathan/skillgap-analyzer/internal/llm"
	"github.com/jonathan/skillgap-analyzer/internal/observability"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract skills from a resume file",
	Long:  "Parses a resume (PDF, text, or HTML), runs the skill detectors over the extracted text, and prints the skills ranked by frequency.",
	RunE:  runExtractSkills,
}

var (
	extractSkillsInput  string
	extractSkillsOutput string
	extractSkillsAPIKey string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsInput, "in", "i", "", "Path to resume file (required)")
	extractSkillsCmd.Flags().StringVarP(&extractSkillsOutput, "out", "o", "", "Path to output skills JSON file (optional)")
	extractSkillsCmd.Flags().StringVar(&extractSkillsAPIKey, "api-key", "", "Gemini API key for model-assisted detection (optional, defaults to GEMINI_API_KEY env var)")

	if err := extractSkillsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resume, err := ingestion.ParseResume(extractSkillsInput)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	apiKey := extractSkillsAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	detectors := []extraction.SkillDetector{&extraction.DictionaryDetector{}, extraction.NewTaggerDetector()}
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			fmt.Printf("Warning: model detector unavailable: %v\n", err)
		} else {
			defer client.Close()
			detectors = append(detectors, extraction.NewModelDetector(client))
		}
	}

	skills, warnings := extraction.NewExtractor(detectors...).Extract(ctx, resume.ExtractedText)
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	resume.Skills = skills

	observability.NewPrinter(os.Stdout).PrintResume(resume)

	if extractSkillsOutput != "" {
		data, err := json.MarshalIndent(skills, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills: %w", err)
		}
		if err := os.WriteFile(extractSkillsOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write skills file: %w", err)
		}
		fmt.Printf("Skills written to %s\n", extractSkillsOutput)
	}
	return nil
}
