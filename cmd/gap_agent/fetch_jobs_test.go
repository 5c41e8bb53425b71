package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

func TestFetchJobsCommand_SampleFallback(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outPath := filepath.Join(t.TempDir(), "jobs.json")

	cmd := exec.Command(binaryPath, "fetch-jobs", "--domain", "DevOps Engineer", "--count", "6", "--out", outPath)
	cmd.Env = append(os.Environ(), "ADZUNA_APP_ID=", "ADZUNA_API_KEY=")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "using sample jobs")
	assert.Contains(t, string(output), "JOB CORPUS")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var jobs []types.Job
	require.NoError(t, json.Unmarshal(data, &jobs))
	assert.Len(t, jobs, 6)
	for _, job := range jobs {
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Company)
	}
}

func TestFetchJobsCommand_DeterministicSamples(t *testing.T) {
	binaryPath := getBinaryPath(t)

	run := func() []byte {
		outPath := filepath.Join(t.TempDir(), "jobs.json")
		cmd := exec.Command(binaryPath, "fetch-jobs", "--count", "4", "--out", outPath)
		cmd.Env = append(os.Environ(), "ADZUNA_APP_ID=", "ADZUNA_API_KEY=")
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "output: %s", output)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, string(run()), string(run()))
}
