package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skillgap-analyzer/internal/plan"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Analysis is a stored analysis record, the flattened form of an
// AnalysisResult.
type Analysis struct {
	ID                uuid.UUID  `json:"id"`
	ResumeFilename    string     `json:"resume_filename"`
	UserName          string     `json:"user_name,omitempty"`
	UserEmail         string     `json:"user_email,omitempty"`
	MatchingSkills    string     `json:"matching_skills"`
	MissingSkills     string     `json:"missing_skills"`
	MatchPercentage   float64    `json:"match_percentage"`
	JobsAnalyzed      int        `json:"jobs_analyzed"`
	ClusterID         *int       `json:"cluster_id,omitempty"`
	JobsInSameCluster int        `json:"jobs_in_same_cluster"`
	CreatedAt         time.Time  `json:"created_at"`
}

// SaveAnalysis stores an analysis result and returns its id.
func (db *DB) SaveAnalysis(ctx context.Context, result *types.AnalysisResult) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses
		 (resume_filename, user_name, user_email, matching_skills, missing_skills,
		  match_percentage, jobs_analyzed, cluster_id, jobs_in_same_cluster)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		result.Resume.Filename, result.Resume.UserName, result.Resume.Email,
		types.JoinSkillNames(result.MatchingSkills), types.JoinSkillNames(result.MissingSkills),
		result.MatchPercentage, result.TotalJobsAnalyzed(), result.ClusterID, result.JobsInSameCluster,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// SaveLearningWeeks stores the weekly breakdown of a learning plan.
func (db *DB) SaveLearningWeeks(ctx context.Context, analysisID uuid.UUID, weeks []plan.Week) error {
	for _, week := range weeks {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO learning_weeks (analysis_id, week_number, skill_focus, resources, milestones)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (analysis_id, week_number)
			 DO UPDATE SET skill_focus = $3, resources = $4, milestones = $5`,
			analysisID, week.Number, types.JoinSkillNames(week.Skills),
			weekResourceSummary(week), weekMilestoneSummary(week),
		)
		if err != nil {
			return fmt.Errorf("failed to save learning week %d: %w", week.Number, err)
		}
	}
	return nil
}

// GetAnalysis retrieves a stored analysis by id, or nil if absent.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_filename, COALESCE(user_name, ''), COALESCE(user_email, ''),
		        COALESCE(matching_skills, ''), COALESCE(missing_skills, ''),
		        match_percentage, jobs_analyzed, cluster_id, jobs_in_same_cluster, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.ResumeFilename, &a.UserName, &a.UserEmail, &a.MatchingSkills,
		&a.MissingSkills, &a.MatchPercentage, &a.JobsAnalyzed, &a.ClusterID,
		&a.JobsInSameCluster, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// ListAnalyses retrieves recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_filename, COALESCE(user_name, ''), COALESCE(user_email, ''),
		        COALESCE(matching_skills, ''), COALESCE(missing_skills, ''),
		        match_percentage, jobs_analyzed, cluster_id, jobs_in_same_cluster, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.ResumeFilename, &a.UserName, &a.UserEmail,
			&a.MatchingSkills, &a.MissingSkills, &a.MatchPercentage, &a.JobsAnalyzed,
			&a.ClusterID, &a.JobsInSameCluster, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

func weekResourceSummary(week plan.Week) string {
	var titles []string
	for _, skill := range week.Skills {
		for _, r := range week.Resources[skill.Key()] {
			titles = append(titles, r.ResourceTitle)
		}
	}
	if len(titles) == 0 {
		return "See learning path for details"
	}
	return joinLimited(titles, 6)
}

func weekMilestoneSummary(week plan.Week) string {
	return joinLimited(week.Milestones, 3)
}

func joinLimited(items []string, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	out := ""
	for i, item := range items {
		if i > 0 {
			out += "; "
		}
		out += item
	}
	return out
}
