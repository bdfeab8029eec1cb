package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

func TestEventRepositoryListUpcoming(t *testing.T) {
	db := setupTestDB(t, &models.Event{})
	repo := NewEventRepository(db)
	ctx := context.Background()

	now := time.Now()

	past := models.Event{
		Summary: "Portes ouvertes 2024",
		Start:   now.Add(-72 * time.Hour),
		Until:   now.Add(-48 * time.Hour),
	}
	running := models.Event{
		Summary: "Semaine de la médiation animale",
		Start:   now.Add(-24 * time.Hour),
		Until:   now.Add(24 * time.Hour),
	}
	future := models.Event{
		Summary: "Fête de l'association",
		Start:   now.Add(7 * 24 * time.Hour),
		Until:   now.Add(8 * 24 * time.Hour),
	}

	require.NoError(t, repo.Create(ctx, &past))
	require.NoError(t, repo.Create(ctx, &future))
	require.NoError(t, repo.Create(ctx, &running))

	events, err := repo.ListUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, events, 2, "finished events must be excluded")
	require.Equal(t, "Semaine de la médiation animale", events[0].Summary, "events are ordered by start date")
	require.Equal(t, "Fête de l'association", events[1].Summary)
}
