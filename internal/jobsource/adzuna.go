package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	adzunaBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	adzunaCountry  = "us"
	adzunaPageSize = 50
	// maxConcurrentPages bounds the page fan-out against the API.
	maxConcurrentPages = 4
)

// AdzunaSource fetches job postings from the Adzuna search API. Pages are
// fetched concurrently and reassembled in page order so the corpus is
// deterministic for a given API response.
type AdzunaSource struct {
	appID   string
	apiKey  string
	baseURL string
	country string
	client  *http.Client

	detector extraction.SkillDetector
}

func NewAdzunaSource(appID, apiKey string) *AdzunaSource {
	return &AdzunaSource{
		appID:    appID,
		apiKey:   apiKey,
		baseURL:  adzunaBaseURL,
		country:  adzunaCountry,
		client:   &http.Client{Timeout: 10 * time.Second},
		detector: &extraction.DictionaryDetector{},
	}
}

// WithBaseURL points the source at a different API endpoint. Tests use this
// to target a local server.
func (s *AdzunaSource) WithBaseURL(base string) *AdzunaSource {
	s.baseURL = base
	return s
}

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Description string `json:"description"`
	Location    struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	RedirectURL string `json:"redirect_url"`
	Created     string `json:"created"`
}

// FetchJobs retrieves up to count jobs for the query.
func (s *AdzunaSource) FetchJobs(ctx context.Context, query string, count int) ([]types.Job, error) {
	if count <= 0 {
		return nil, nil
	}
	pages := (count + adzunaPageSize - 1) / adzunaPageSize

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPages)

	pageResults := make([][]types.Job, pages)
	for page := 1; page <= pages; page++ {
		page := page
		g.Go(func() error {
			jobs, err := s.fetchPage(gCtx, query, page)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			pageResults[page-1] = jobs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var jobs []types.Job
	for _, pageJobs := range pageResults {
		jobs = append(jobs, pageJobs...)
	}
	if len(jobs) > count {
		jobs = jobs[:count]
	}
	return jobs, nil
}

func (s *AdzunaSource) fetchPage(ctx context.Context, query string, page int) ([]types.Job, error) {
	endpoint := fmt.Sprintf("%s/%s/search/%d", s.baseURL, s.country, page)
	params := url.Values{
		"app_id":           {s.appID},
		"app_key":          {s.apiKey},
		"results_per_page": {fmt.Sprint(adzunaPageSize)},
		"what":             {query},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var decoded adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	jobs := make([]types.Job, 0, len(decoded.Results))
	for _, raw := range decoded.Results {
		jobs = append(jobs, s.parseJob(ctx, raw))
	}
	return jobs, nil
}

func (s *AdzunaSource) parseJob(ctx context.Context, raw adzunaJob) types.Job {
	job := types.Job{
		Title:       orUnknown(raw.Title),
		Company:     orUnknown(raw.Company.DisplayName),
		Description: stripHTML(raw.Description),
		Location:    raw.Location.DisplayName,
		URL:         raw.RedirectURL,
		PostedDate:  raw.Created,
	}

	keys, err := s.detector.Detect(ctx, job.Description)
	if err == nil {
		for _, key := range keys {
			job.AddRequiredSkill(types.NewSkill(key, extraction.CategoryFor(key), extraction.IsTechnical(key), 1))
		}
	}
	return job
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// stripHTML flattens HTML markup in API descriptions to plain text. Plain
// text input passes through unchanged.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
