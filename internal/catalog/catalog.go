// Package catalog provides lookup of learning resources by skill. The
// in-memory implementation carries a curated seed set; a database-backed
// implementation can satisfy the same interface.
package catalog

import (
	"context"
	"sort"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Catalog answers "what should someone study to pick up this skill".
// Implementations return at most limit resources, best rated first. A skill
// with no resources returns an empty slice, not an error.
type Catalog interface {
	ResourcesForSkill(ctx context.Context, skillName string, limit int) ([]types.LearningResource, error)
}

// MemoryCatalog serves resources from an in-process index keyed by
// normalized skill name.
type MemoryCatalog struct {
	bySkill map[string][]types.LearningResource
}

// NewMemoryCatalog indexes the given resources. With no arguments it loads
// the built-in seed set.
func NewMemoryCatalog(resources ...types.LearningResource) *MemoryCatalog {
	if len(resources) == 0 {
		resources = seedResources
	}
	c := &MemoryCatalog{bySkill: make(map[string][]types.LearningResource)}
	for _, r := range resources {
		key := types.NormalizeSkillKey(r.SkillName)
		c.bySkill[key] = append(c.bySkill[key], r)
	}
	for key := range c.bySkill {
		list := c.bySkill[key]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	}
	return c
}

// ResourcesForSkill returns up to limit resources for the skill, rated best
// first. Lookup is case-insensitive.
func (c *MemoryCatalog) ResourcesForSkill(_ context.Context, skillName string, limit int) ([]types.LearningResource, error) {
	list := c.bySkill[types.NormalizeSkillKey(skillName)]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	out := make([]types.LearningResource, len(list))
	copy(out, list)
	return out, nil
}

// Skills returns every skill the catalog has resources for, sorted.
func (c *MemoryCatalog) Skills() []string {
	keys := make([]string, 0, len(c.bySkill))
	for key := range c.bySkill {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
