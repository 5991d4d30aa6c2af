package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/models/db_models"
)

func TestActivitiesForKnownCategory(t *testing.T) {
	repo := NewActivityRepository()

	templates := repo.ActivitiesFor(db_models.CategoryFood)
	require.Len(t, templates, 3)
	for _, template := range templates {
		assert.NotEmpty(t, template.Name)
		assert.NotEmpty(t, template.Description)
		assert.Positive(t, template.DurationHours)
	}
}

func TestActivitiesForUnknownCategory(t *testing.T) {
	repo := NewActivityRepository()
	assert.Empty(t, repo.ActivitiesFor("time travel"))
}

func TestActivitiesForReturnsCopy(t *testing.T) {
	repo := NewActivityRepository()

	templates := repo.ActivitiesFor(db_models.CategoryNature)
	templates[0].Name = "mutated"

	fresh := repo.ActivitiesFor(db_models.CategoryNature)
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestActivityCategoriesOrder(t *testing.T) {
	repo := NewActivityRepository()
	assert.Equal(t, db_models.ActivityCategories(), repo.Categories())
}

func TestActivityTotalCount(t *testing.T) {
	repo := NewActivityRepository()
	assert.Equal(t, 24, repo.TotalCount())
}
