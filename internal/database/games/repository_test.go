package games

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/database/dbtest"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func setupTestRepo(t *testing.T) (*Repository, *database.Database) {
	db := dbtest.New(t)
	return NewRepository(db.DB), db
}

func genreIDs(t *testing.T, db *database.Database, gameID int64) []int64 {
	t.Helper()
	var ids []int64
	require.NoError(t, db.DB.Model(&entities.GameGenre{}).Where("game_id = ?", gameID).Order("genre_id").Pluck("genre_id", &ids).Error)
	return ids
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	repo, db := setupTestRepo(t)
	devID := dbtest.Company(t, db.DB, "FromSoftware")
	pubID := dbtest.Company(t, db.DB, "Bandai Namco")

	game, err := entities.NewGame("Elden Ring", 2022, datatypes.NewNull("Open world"), datatypes.NewNull(devID), datatypes.NewNull(pubID))
	require.NoError(t, err)

	id, err := repo.Create(game)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Zero(t, game.ID)

	found, ok, err := repo.FindByID(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Elden Ring", found.Title)
	assert.Equal(t, 2022, found.ReleaseYear)
	assert.Equal(t, datatypes.NewNull("Open world"), found.Description)
	assert.Equal(t, datatypes.NewNull(devID), found.DeveloperID)
	assert.Equal(t, datatypes.NewNull(pubID), found.PublisherID)
	assert.Equal(t, "FromSoftware", found.DeveloperName.V)
	assert.Equal(t, "Bandai Namco", found.PublisherName.V)
}

func TestRepository_CreateWithoutCompanies(t *testing.T) {
	repo, _ := setupTestRepo(t)

	id, err := repo.Create(entities.Game{Title: "Tetris", ReleaseYear: 1984})
	require.NoError(t, err)

	found, ok, err := repo.FindByID(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, found.Description.Valid)
	assert.False(t, found.DeveloperID.Valid)
	assert.False(t, found.DeveloperName.Valid)
	assert.False(t, found.PublisherName.Valid)
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, ok, err := repo.FindByID(404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_CreateValidatesFirst(t *testing.T) {
	repo, db := setupTestRepo(t)

	_, err := repo.Create(entities.Game{Title: "Spacewar!", ReleaseYear: 1900})
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Game{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.Create(entities.Game{Title: "Doom", ReleaseYear: 1993})
	require.NoError(t, err)

	_, err = repo.Create(entities.Game{Title: "Doom", ReleaseYear: 1993})
	assert.ErrorIs(t, err, database.ErrDuplicateEntry)

	_, err = repo.Create(entities.Game{Title: "Doom", ReleaseYear: 2016})
	assert.NoError(t, err)
}

func TestRepository_CreateMissingDeveloper(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.Create(entities.Game{Title: "Ghost", ReleaseYear: 2000, DeveloperID: datatypes.NewNull[int64](999)})
	var fkErr *database.ForeignKeyViolationError
	require.True(t, errors.As(err, &fkErr))
	assert.Equal(t, "nonexistent developer or publisher", fkErr.Message)
}

func TestRepository_FindAllOrdersByID(t *testing.T) {
	repo, db := setupTestRepo(t)
	first := dbtest.Game(t, db.DB, "Zelda", 1986)
	second := dbtest.Game(t, db.DB, "Asteroids", 1979)

	games, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, first, games[0].ID)
	assert.Equal(t, second, games[1].ID)
}

func TestRepository_SearchByTitle(t *testing.T) {
	repo, db := setupTestRepo(t)
	dbtest.Game(t, db.DB, "Half-Life", 1998)
	dbtest.Game(t, db.DB, "Half-Life 2", 2004)
	dbtest.Game(t, db.DB, "Portal", 2007)

	games, err := repo.SearchByTitle("half")
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Half-Life", games[0].Title)

	games, err = repo.SearchByTitle("quake")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestRepository_SearchByTitle_NonASCII(t *testing.T) {
	repo, db := setupTestRepo(t)
	id := dbtest.Game(t, db.DB, "Ōkami", 2006)
	dbtest.Game(t, db.DB, "Pokémon Red", 1996)

	games, err := repo.SearchByTitle("Ōkami")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, id, games[0].ID)

	games, err = repo.SearchByTitle("kami")
	require.NoError(t, err)
	assert.Len(t, games, 1)

	games, err = repo.SearchByTitle("pokémon")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Pokémon Red", games[0].Title)
}

func TestRepository_SearchByTitle_Wildcards(t *testing.T) {
	repo, db := setupTestRepo(t)
	dbtest.Game(t, db.DB, "Half-Life", 1998)
	literal := dbtest.Game(t, db.DB, "100% Orange Juice", 2014)
	underscore := dbtest.Game(t, db.DB, "Game_Dev Tycoon", 2013)

	games, err := repo.SearchByTitle("f_l")
	require.NoError(t, err)
	assert.Empty(t, games)

	games, err = repo.SearchByTitle("_")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, underscore, games[0].ID)

	games, err = repo.SearchByTitle("100%")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, literal, games[0].ID)

	games, err = repo.SearchByTitle(`\`)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestRepository_Update(t *testing.T) {
	repo, db := setupTestRepo(t)
	devID := dbtest.Company(t, db.DB, "Id Software")
	id := dbtest.Game(t, db.DB, "Quake", 1996)

	updated := entities.Game{
		ID:          id,
		Title:       "Quake II",
		ReleaseYear: 1997,
		Description: datatypes.NewNull("Strogg"),
		DeveloperID: datatypes.NewNull(devID),
	}
	require.NoError(t, repo.Update(updated))

	found, ok, err := repo.FindByID(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Quake II", found.Title)
	assert.Equal(t, 1997, found.ReleaseYear)
	assert.Equal(t, "Strogg", found.Description.V)
	assert.Equal(t, "Id Software", found.DeveloperName.V)

	t.Run("clears optional fields", func(t *testing.T) {
		require.NoError(t, repo.Update(entities.Game{ID: id, Title: "Quake II", ReleaseYear: 1997}))
		found, _, err := repo.FindByID(id)
		require.NoError(t, err)
		assert.False(t, found.Description.Valid)
		assert.False(t, found.DeveloperID.Valid)
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		assert.NoError(t, repo.Update(entities.Game{ID: 999, Title: "Nothing", ReleaseYear: 2000}))
	})

	t.Run("invalid game is rejected", func(t *testing.T) {
		err := repo.Update(entities.Game{ID: id, Title: "", ReleaseYear: 1997})
		var verr *entities.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, db := setupTestRepo(t)
	id := dbtest.Game(t, db.DB, "Myst", 1993)
	genreID := dbtest.Genre(t, db.DB, "Puzzle")
	require.NoError(t, repo.AddGenre(id, genreID))

	require.NoError(t, repo.Delete(id))

	_, ok, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, genreIDs(t, db, id))

	assert.NoError(t, repo.Delete(id))
}

func TestRepository_AddAndRemoveGenre(t *testing.T) {
	repo, db := setupTestRepo(t)
	id := dbtest.Game(t, db.DB, "Diablo", 1996)
	rpg := dbtest.Genre(t, db.DB, "RPG")
	action := dbtest.Genre(t, db.DB, "Action")

	require.NoError(t, repo.AddGenre(id, rpg))
	require.NoError(t, repo.AddGenre(id, rpg))
	require.NoError(t, repo.AddGenre(id, action))
	assert.Equal(t, []int64{rpg, action}, genreIDs(t, db, id))

	require.NoError(t, repo.RemoveGenre(id, rpg))
	assert.Equal(t, []int64{action}, genreIDs(t, db, id))

	err := repo.AddGenre(id, 999)
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

func TestRepository_ReplaceGenres(t *testing.T) {
	repo, db := setupTestRepo(t)
	id := dbtest.Game(t, db.DB, "Fallout", 1997)
	rpg := dbtest.Genre(t, db.DB, "RPG")
	action := dbtest.Genre(t, db.DB, "Action")
	horror := dbtest.Genre(t, db.DB, "Horror")
	require.NoError(t, repo.AddGenre(id, horror))

	t.Run("replaces the whole set", func(t *testing.T) {
		require.NoError(t, repo.ReplaceGenres(id, []int64{rpg, action, rpg}))
		assert.Equal(t, []int64{rpg, action}, genreIDs(t, db, id))
	})

	t.Run("failure keeps previous links", func(t *testing.T) {
		err := repo.ReplaceGenres(id, []int64{horror, 999})
		assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
		assert.Equal(t, []int64{rpg, action}, genreIDs(t, db, id))
	})

	t.Run("empty set clears links and keeps the game", func(t *testing.T) {
		require.NoError(t, repo.ReplaceGenres(id, nil))
		assert.Empty(t, genreIDs(t, db, id))
		require.NoError(t, repo.ReplaceGenres(id, []int64{}))
		assert.Empty(t, genreIDs(t, db, id))

		_, ok, err := repo.FindByID(id)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestGenreLinks(t *testing.T) {
	links := genreLinks(3, []int64{5, 1, 5, 2, 1})
	assert.Equal(t, []entities.GameGenre{
		{GameID: 3, GenreID: 5},
		{GameID: 3, GenreID: 1},
		{GameID: 3, GenreID: 2},
	}, links)
	assert.Empty(t, genreLinks(3, nil))
}
