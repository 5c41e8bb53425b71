package db

import (
	"context"
	"fmt"

	"github.com/jonathan/skillgap-analyzer/internal/catalog"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ResourcesForSkill returns up to limit learning resources for a skill,
// best rated first. It satisfies catalog.Catalog so a database-backed
// deployment serves the plan generator directly.
func (db *DB) ResourcesForSkill(ctx context.Context, skillName string, limit int) ([]types.LearningResource, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, resource_title, resource_url, platform, duration_weeks,
		        difficulty_level, COALESCE(description, ''), COALESCE(rating, 0), price
		 FROM learning_resources
		 WHERE LOWER(skill_name) = LOWER($1)
		 ORDER BY rating DESC NULLS LAST
		 LIMIT $2`,
		skillName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources for %s: %w", skillName, err)
	}
	defer rows.Close()

	var resources []types.LearningResource
	for rows.Next() {
		var r types.LearningResource
		var platform, difficulty string
		if err := rows.Scan(&r.SkillName, &r.ResourceTitle, &r.ResourceURL, &platform,
			&r.DurationWeeks, &difficulty, &r.Description, &r.Rating, &r.Price); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		r.Platform = types.ParsePlatform(platform)
		r.DifficultyLevel = types.ParseDifficulty(difficulty)
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

// InsertResources adds learning resources to the catalog.
func (db *DB) InsertResources(ctx context.Context, resources []types.LearningResource) error {
	for _, r := range resources {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO learning_resources
			 (skill_name, resource_title, resource_url, platform, duration_weeks,
			  difficulty_level, description, rating, price)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			r.SkillName, r.ResourceTitle, r.ResourceURL, string(r.Platform), r.DurationWeeks,
			string(r.DifficultyLevel), r.Description, r.Rating, r.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert resource %q: %w", r.ResourceTitle, err)
		}
	}
	return nil
}

// seedResourcesIfEmpty loads the built-in resource set into an empty catalog.
func (db *DB) seedResourcesIfEmpty(ctx context.Context) error {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM learning_resources`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count resources: %w", err)
	}
	if count > 0 {
		return nil
	}
	return db.InsertResources(ctx, catalog.SeedResources())
}
