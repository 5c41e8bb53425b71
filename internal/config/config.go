// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags and environment variables.
type Config struct {
	// Inputs
	Resume    string `json:"resume,omitempty"`     // Path to resume file
	JobDomain string `json:"job_domain,omitempty"` // Job domain to analyze against
	JobCount  int    `json:"job_count,omitempty" validate:"omitempty,gte=1,lte=500"`

	// Output
	OutputDir string `json:"output_dir,omitempty"` // Directory for report and JSON artifacts

	// Credentials
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key for model-assisted detection
	AdzunaAppID  string `json:"adzuna_app_id,omitempty"`  // Adzuna application id
	AdzunaAPIKey string `json:"adzuna_api_key,omitempty"` // Adzuna application key
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL

	// Clustering
	Clusters int   `json:"clusters,omitempty" validate:"omitempty,gte=1,lte=20"`
	Seed     int64 `json:"seed,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// DefaultJobDomain is used when neither config nor flags name a domain.
const DefaultJobDomain = "Software Developer"

// DefaultJobCount is the corpus size fetched when unspecified.
const DefaultJobCount = 50

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables, the lowest
// precedence layer under config file and flags.
func FromEnv() Config {
	return Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		AdzunaAppID:  os.Getenv("ADZUNA_APP_ID"),
		AdzunaAPIKey: os.Getenv("ADZUNA_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
}

// Validate checks value ranges and that referenced files exist. Required
// fields are enforced later by flag validation, after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			field := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", field.Field(), field.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flag values always win over config file values, which win
// over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobDomain == "" {
		result.JobDomain = defaults.JobDomain
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.AdzunaAppID == "" {
		result.AdzunaAppID = defaults.AdzunaAppID
	}
	if result.AdzunaAPIKey == "" {
		result.AdzunaAPIKey = defaults.AdzunaAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.JobCount == 0 {
		result.JobCount = defaults.JobCount
	}
	if result.Clusters == 0 {
		result.Clusters = defaults.Clusters
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields are not merged: unset and false are indistinguishable,
	// so CLI flags always win.

	return result
}
