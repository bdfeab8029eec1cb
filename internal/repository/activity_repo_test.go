package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

func TestActivityRepositoryListByCategory(t *testing.T) {
	db := setupTestDB(t, &models.ActivityCategory{}, &models.Activity{})
	repo := NewActivityRepository(db)
	ctx := context.Background()

	schools := models.ActivityCategory{Name: "Écoles"}
	care := models.ActivityCategory{Name: "EHPAD"}
	require.NoError(t, repo.CreateCategory(ctx, &schools))
	require.NoError(t, repo.CreateCategory(ctx, &care))

	visit := models.Activity{
		CategoryID:  schools.ID,
		Title:       "Visite en classe",
		Description: "Sensibilisation au bien-être animal.",
		Schedule:    datatypes.JSONMap{"jour": "mardi", "creneau": "14h-16h"},
	}
	workshop := models.Activity{CategoryID: schools.ID, Title: "Atelier lecture au chien"}
	session := models.Activity{CategoryID: care.ID, Title: "Séance en résidence"}

	require.NoError(t, repo.CreateActivity(ctx, &visit))
	require.NoError(t, repo.CreateActivity(ctx, &workshop))
	require.NoError(t, repo.CreateActivity(ctx, &session))

	activities, err := repo.ListByCategory(ctx, schools.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "Atelier lecture au chien", activities[0].Title, "activities are ordered by title")

	stored, err := repo.GetActivity(ctx, visit.ID)
	require.NoError(t, err)
	require.Equal(t, "mardi", stored.Schedule["jour"])
}

func TestActivityRepositoryCategoryLifecycle(t *testing.T) {
	db := setupTestDB(t, &models.ActivityCategory{}, &models.Activity{})
	repo := NewActivityRepository(db)
	ctx := context.Background()

	category := models.ActivityCategory{Name: "Entreprises"}
	require.NoError(t, repo.CreateCategory(ctx, &category))

	category.Description = "Interventions de cohésion d'équipe."
	require.NoError(t, repo.UpdateCategory(ctx, &category))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "Interventions de cohésion d'équipe.", categories[0].Description)

	require.NoError(t, repo.DeleteCategory(ctx, category.ID))
	require.ErrorIs(t, repo.DeleteCategory(ctx, category.ID), gorm.ErrRecordNotFound)
}
