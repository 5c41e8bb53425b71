package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"job_domain": "data scientist",
		"job_count": 25,
		"adzuna_app_id": "id",
		"adzuna_api_key": "key",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data scientist", cfg.JobDomain)
	assert.Equal(t, 25, cfg.JobCount)
	assert.Equal(t, "id", cfg.AdzunaAppID)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("text"), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty is valid", Config{}, ""},
		{"valid full", Config{Resume: resume, JobCount: 50, Clusters: 3}, ""},
		{"job count too large", Config{JobCount: 1000}, "JobCount"},
		{"clusters out of range", Config{Clusters: 50}, "Clusters"},
		{"missing resume file", Config{Resume: "/nonexistent/resume.pdf"}, "resume file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobDomain: "devops", JobCount: 10}
	defaults := Config{
		JobDomain:   "ignored",
		JobCount:    50,
		APIKey:      "env-key",
		DatabaseURL: "postgres://localhost/skillgap",
		Clusters:    3,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "devops", merged.JobDomain, "explicit value wins")
	assert.Equal(t, 10, merged.JobCount)
	assert.Equal(t, "env-key", merged.APIKey, "empty value filled from defaults")
	assert.Equal(t, "postgres://localhost/skillgap", merged.DatabaseURL)
	assert.Equal(t, 3, merged.Clusters)
}
