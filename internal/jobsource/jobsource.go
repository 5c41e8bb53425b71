// Package jobsource fetches the job corpus to analyze against: the Adzuna
// search API when credentials are configured, generated sample jobs otherwise.
package jobsource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ErrEmptyCorpus is returned when a source produces no jobs at all; the
// analysis cannot proceed without a corpus.
var ErrEmptyCorpus = errors.New("jobsource: no jobs found for query")

// Source fetches up to count jobs matching a search query.
type Source interface {
	FetchJobs(ctx context.Context, query string, count int) ([]types.Job, error)
}

// Fetcher is the production source: it tries the primary source and falls
// back to sample jobs when the primary is unconfigured or fails. The
// fallback reason is surfaced as a warning, not an error.
type Fetcher struct {
	primary  Source
	fallback Source
}

// NewFetcher builds the standard Adzuna-with-samples fetcher. With empty
// credentials the primary is skipped entirely.
func NewFetcher(appID, apiKey string) *Fetcher {
	f := &Fetcher{fallback: NewSampleSource()}
	if appID != "" && apiKey != "" {
		f.primary = NewAdzunaSource(appID, apiKey)
	}
	return f
}

// NewFetcherWith wires explicit sources, for tests and custom deployments.
func NewFetcherWith(primary, fallback Source) *Fetcher {
	return &Fetcher{primary: primary, fallback: fallback}
}

// FetchJobs returns jobs for the query plus a warning when the primary
// source was unavailable and samples were used instead.
func (f *Fetcher) FetchJobs(ctx context.Context, query string, count int) ([]types.Job, string, error) {
	if f.primary != nil {
		jobs, err := f.primary.FetchJobs(ctx, query, count)
		if err == nil && len(jobs) > 0 {
			return jobs, "", nil
		}
		warning := "job API returned no results, using sample jobs"
		if err != nil {
			warning = fmt.Sprintf("job API fetch failed, using sample jobs: %v", err)
		}
		jobs, ferr := f.fallback.FetchJobs(ctx, query, count)
		return jobs, warning, ferr
	}

	jobs, err := f.fallback.FetchJobs(ctx, query, count)
	if err != nil {
		return nil, "", err
	}
	return jobs, "job API credentials not configured, using sample jobs", nil
}
