package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

func TestChartRepositoryListOrdersByPosition(t *testing.T) {
	db := setupTestDB(t, &models.OrganisationChartEntry{})
	repo := NewChartRepository(db)
	ctx := context.Background()

	treasurer := models.OrganisationChartEntry{FullName: "Sophie Martin", Role: "Trésorière", Position: 3}
	president := models.OrganisationChartEntry{FullName: "Claire Bernard", Role: "Présidente", Position: 1}
	secretary := models.OrganisationChartEntry{FullName: "Ali Benali", Role: "Secrétaire", Position: 2}

	require.NoError(t, repo.Create(ctx, &treasurer))
	require.NoError(t, repo.Create(ctx, &president))
	require.NoError(t, repo.Create(ctx, &secretary))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "Présidente", entries[0].Role)
	require.Equal(t, "Secrétaire", entries[1].Role)
	require.Equal(t, "Trésorière", entries[2].Role)
}

func TestChartRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t, &models.OrganisationChartEntry{})
	repo := NewChartRepository(db)
	ctx := context.Background()

	entry := models.OrganisationChartEntry{FullName: "Claire Bernard", Role: "Présidente", Position: 1}
	require.NoError(t, repo.Create(ctx, &entry))

	entry.PhotoURL = "https://cdn.example.com/claire.jpg"
	require.NoError(t, repo.Update(ctx, &entry))

	stored, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/claire.jpg", stored.PhotoURL)
}
