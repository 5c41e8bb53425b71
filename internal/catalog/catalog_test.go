package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcesForSkill_BestRatedFirst(t *testing.T) {
	c := NewMemoryCatalog()

	resources, err := c.ResourcesForSkill(context.Background(), "python", 3)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "Python for Everybody", resources[0].ResourceTitle)
	for i := 1; i < len(resources); i++ {
		assert.GreaterOrEqual(t, resources[i-1].Rating, resources[i].Rating)
	}
}

func TestResourcesForSkill_CaseInsensitive(t *testing.T) {
	c := NewMemoryCatalog()

	upper, err := c.ResourcesForSkill(context.Background(), "  DOCKER ", 3)
	require.NoError(t, err)
	lower, err := c.ResourcesForSkill(context.Background(), "docker", 3)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestResourcesForSkill_UnknownSkillIsEmpty(t *testing.T) {
	c := NewMemoryCatalog()

	resources, err := c.ResourcesForSkill(context.Background(), "cobol", 3)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestResourcesForSkill_RespectsLimit(t *testing.T) {
	c := NewMemoryCatalog()

	resources, err := c.ResourcesForSkill(context.Background(), "python", 1)
	require.NoError(t, err)
	assert.Len(t, resources, 1)

	all, err := c.ResourcesForSkill(context.Background(), "python", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3, "non-positive limit returns everything")
}
