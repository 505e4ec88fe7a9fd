//go:build integration

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// setupPostgres starts a PostgreSQL container and opens the catalog on it.
func setupPostgres(t *testing.T) *database.Database {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("gamesreviewer"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewDatabase(database.Options{
		Driver:   database.DriverPostgres,
		DSN:      connStr,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCatalog_Postgres(t *testing.T) {
	db := setupPostgres(t)
	catalog := NewCatalog(NewSQLStores(db.DB), nil)

	types, err := catalog.CompanyTypes.GetAllCompanyTypes()
	require.NoError(t, err)
	assert.Len(t, types, 3)

	rpg, err := catalog.Genres.CreateGenre(entities.Genre{Name: "RPG"})
	require.NoError(t, err)
	_, err = catalog.Genres.CreateGenre(entities.Genre{Name: "RPG"})
	assert.ErrorIs(t, err, database.ErrDuplicateEntry)

	ign, err := catalog.MediaOutlets.CreateMediaOutlet(entities.MediaOutlet{Name: "IGN"})
	require.NoError(t, err)
	edge, err := catalog.MediaOutlets.CreateMediaOutlet(entities.MediaOutlet{Name: "Edge"})
	require.NoError(t, err)

	gameID, err := catalog.Games.CreateGameWithGenres(entities.Game{Title: "Baldur's Gate 3", ReleaseYear: 2023}, []int64{rpg})
	require.NoError(t, err)

	_, err = catalog.Reviews.CreateReview(entities.Review{GameID: gameID, MediaOutletID: ign, Score: 96})
	require.NoError(t, err)
	_, err = catalog.Reviews.CreateReview(entities.Review{GameID: gameID, MediaOutletID: edge, Score: 91})
	require.NoError(t, err)

	game, ok, err := catalog.Games.GetGameWithFullDetails(gameID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"RPG"}, game.Genres)
	assert.InDelta(t, 93.5, game.AverageRating.V, 1e-9)

	t.Run("outlet with reviews cannot be deleted", func(t *testing.T) {
		err := catalog.MediaOutlets.DeleteMediaOutlet(ign)
		assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
	})

	t.Run("deleting a game removes its reviews", func(t *testing.T) {
		require.NoError(t, catalog.Games.DeleteGame(gameID))
		reviews, err := catalog.Reviews.GetReviewsByGameID(gameID)
		require.NoError(t, err)
		assert.Empty(t, reviews)
		require.NoError(t, catalog.MediaOutlets.DeleteMediaOutlet(ign))
	})
}
