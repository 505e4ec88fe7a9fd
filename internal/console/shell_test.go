package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/gamesreviewer/internal/database/dbtest"
	"github.com/mrlokans/gamesreviewer/internal/entities"
	"github.com/mrlokans/gamesreviewer/internal/services"
)

func newTestCatalog(t *testing.T) *services.Catalog {
	t.Helper()
	db := dbtest.New(t)
	return services.NewCatalog(services.NewSQLStores(db.DB), nil)
}

// run feeds the scripted lines to a fresh shell and returns its output.
func run(t *testing.T, catalog *services.Catalog, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	shell := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, catalog, WithColor(false))
	require.NoError(t, shell.Run())
	return out.String()
}

func TestShell_ExitAndEndOfInput(t *testing.T) {
	catalog := newTestCatalog(t)

	out := run(t, catalog, "0")
	assert.Contains(t, out, "GAMES REVIEWER")
	assert.Contains(t, out, "Goodbye!")

	var buf bytes.Buffer
	shell := New(strings.NewReader(""), &buf, catalog, WithColor(false))
	assert.NoError(t, shell.Run())

	// end of input in the middle of a form
	out = run(t, catalog, "3", "3")
	assert.Contains(t, out, "Name: ")
	assert.Contains(t, out, "Goodbye!")
}

func TestShell_InvalidChoiceReprompts(t *testing.T) {
	out := run(t, newTestCatalog(t), "9", "abc", "0")
	assert.Contains(t, out, "Value must be between 0 and 6.")
	assert.Contains(t, out, "Invalid input. Enter a whole number.")
	assert.Contains(t, out, "Goodbye!")
}

func TestShell_GenreLifecycle(t *testing.T) {
	catalog := newTestCatalog(t)

	out := run(t, catalog,
		"3",
		"3", "Action",
		"3", "Action",
		"1",
		"4", "1", "Action-Adventure",
		"0", "0",
	)
	assert.Contains(t, out, "Genre created with ID 1")
	assert.Contains(t, out, "genre with this name already exists")
	assert.Contains(t, out, "Total genres: 1")
	assert.Contains(t, out, "Genre updated.")

	genre, ok, err := catalog.Genres.GetGenreByID(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Action-Adventure", genre.Name)
}

func TestShell_DeleteNeedsConfirmation(t *testing.T) {
	catalog := newTestCatalog(t)
	genreID, err := catalog.Genres.CreateGenre(entities.Genre{Name: "Puzzle"})
	require.NoError(t, err)

	out := run(t, catalog, "3", "5", "1", "n", "0", "0")
	assert.Contains(t, out, "You are about to delete the genre: Puzzle")
	assert.Contains(t, out, "Deletion cancelled.")
	_, ok, err := catalog.Genres.GetGenreByID(genreID)
	require.NoError(t, err)
	assert.True(t, ok)

	out = run(t, catalog, "3", "5", "1", "maybe", "yes", "0", "0")
	assert.Contains(t, out, "Enter y (yes) or n (no).")
	assert.Contains(t, out, "Genre deleted.")
	_, ok, err = catalog.Genres.GetGenreByID(genreID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShell_CreateGameWithGenresAndDetails(t *testing.T) {
	catalog := newTestCatalog(t)
	_, err := catalog.Companies.CreateCompany(entities.ProductionCompany{Name: "Supergiant Games"})
	require.NoError(t, err)
	_, err = catalog.Genres.CreateGenre(entities.Genre{Name: "Action"})
	require.NoError(t, err)
	_, err = catalog.Genres.CreateGenre(entities.Genre{Name: "RPG"})
	require.NoError(t, err)

	out := run(t, catalog,
		"1",
		"4", "Hades", "1900", "2020", "", "1", "", "2, 1, x", "n",
		"2", "1", "0",
		"0", "0",
	)
	assert.Contains(t, out, "Value must be between 1950 and 2100.")
	assert.Contains(t, out, "Skipped invalid ID: x")
	assert.Contains(t, out, "Game created with ID 1")
	assert.Contains(t, out, "Developer: Supergiant Games (ID: 1)")
	assert.Contains(t, out, "Publisher: not set")
	assert.Contains(t, out, "Genres: Action, RPG")
	assert.Contains(t, out, "Average rating: no reviews")
}

func TestShell_GameDetailsNavigation(t *testing.T) {
	catalog := newTestCatalog(t)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Celeste", ReleaseYear: 2018})
	require.NoError(t, err)
	outletID, err := catalog.MediaOutlets.CreateMediaOutlet(entities.MediaOutlet{Name: "Edge"})
	require.NoError(t, err)
	_, err = catalog.Reviews.CreateReview(entities.Review{GameID: gameID, MediaOutletID: outletID, Score: 90})
	require.NoError(t, err)

	out := run(t, catalog,
		"1",
		"2", "1",
		"1", "1", "1",
		"2",
		"0",
		"0", "0",
	)
	assert.Contains(t, out, "Average rating: 90.00/100")
	assert.Contains(t, out, "Outlet: Edge (ID: 1)")
	assert.Contains(t, out, "Media outlet details")
	assert.Contains(t, out, "The game has no developer.")

	out = run(t, catalog, "1", "2", "42", "0", "0")
	assert.Contains(t, out, "Game with ID 42 not found.")
}

func TestShell_EditGameKeepsEmptyFields(t *testing.T) {
	catalog := newTestCatalog(t)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Journey", ReleaseYear: 2012})
	require.NoError(t, err)

	out := run(t, catalog, "1", "5", "1", "", "2013", "", "n", "n", "n", "0", "0")
	assert.Contains(t, out, "Game updated.")

	game, ok, err := catalog.Games.GetGameByID(gameID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Journey", game.Title)
	assert.Equal(t, 2013, game.ReleaseYear)
	assert.False(t, game.Description.Valid)
}

func TestShell_EditGameGenres(t *testing.T) {
	catalog := newTestCatalog(t)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Portal", ReleaseYear: 2007})
	require.NoError(t, err)
	genreID, err := catalog.Genres.CreateGenre(entities.Genre{Name: "Puzzle"})
	require.NoError(t, err)
	require.NoError(t, catalog.Games.AddGenreToGame(gameID, genreID))

	out := run(t, catalog, "1", "6", "1", "", "6", "1", "0", "0", "0")
	assert.Contains(t, out, "Current genres of Portal: Puzzle")
	assert.Contains(t, out, "Genres unchanged.")
	assert.Contains(t, out, "Genres updated.")

	names, err := catalog.Genres.GetGenreNamesByGameID(gameID)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestShell_OutletWithReviewsCannotBeDeleted(t *testing.T) {
	catalog := newTestCatalog(t)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Celeste", ReleaseYear: 2018})
	require.NoError(t, err)
	outletID, err := catalog.MediaOutlets.CreateMediaOutlet(entities.MediaOutlet{Name: "IGN"})
	require.NoError(t, err)
	_, err = catalog.Reviews.CreateReview(entities.Review{GameID: gameID, MediaOutletID: outletID, Score: 80})
	require.NoError(t, err)

	out := run(t, catalog, "4", "5", "1", "y", "0", "0")
	assert.Contains(t, out, "media outlet still has reviews")

	_, ok, err := catalog.MediaOutlets.GetMediaOutletByID(outletID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShell_ReviewScoreRange(t *testing.T) {
	catalog := newTestCatalog(t)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Celeste", ReleaseYear: 2018})
	require.NoError(t, err)
	_, err = catalog.MediaOutlets.CreateMediaOutlet(entities.MediaOutlet{Name: "IGN"})
	require.NoError(t, err)

	out := run(t, catalog,
		"5",
		"4", "1", "1", "150", "85", "Tight platforming",
		"4", "1", "1", "70", "",
		"2", "1",
		"0", "0",
	)
	assert.Contains(t, out, "Value must be between 0 and 100.")
	assert.Contains(t, out, "Review created with ID 1")
	assert.Contains(t, out, "review from this outlet for this game already exists")
	assert.Contains(t, out, "Average rating: 85.00/100")

	reviews, err := catalog.Reviews.GetReviewsByGameID(gameID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Tight platforming", reviews[0].Summary.V)
}

func TestShell_RequirementProfiles(t *testing.T) {
	catalog := newTestCatalog(t)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Doom", ReleaseYear: 2016})
	require.NoError(t, err)

	out := run(t, catalog,
		"6",
		"4", "1",
		"1", "55", "8", "3.1", "", "",
		"y",
		"3", "55", "16", "", "6.5", "8",
		"n",
		"5", "1", "60", "", "", "", "",
		"2", "1",
		"0", "0",
	)
	assert.Contains(t, out, "Low profile added.")
	assert.Contains(t, out, "High profile added.")
	assert.Contains(t, out, "Requirement profile updated.")
	assert.Contains(t, out, "Total profiles: 2")

	reqs, err := catalog.Requirements.GetRequirementsByGameID(gameID)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, 60, reqs[0].StorageGB)
	assert.Equal(t, 8, reqs[0].RAMGB)
	assert.Equal(t, 3.1, reqs[0].CPUGHz.V)
	assert.Equal(t, int64(8), reqs[1].VRAMGB.V)
}

func TestShell_CompanyCreateAndEdit(t *testing.T) {
	catalog := newTestCatalog(t)

	out := run(t, catalog,
		"2",
		"3", "Valve", "1996", "https://valvesoftware.com", "Gabe Newell", "3",
		"4", "1", "", "", "", "", "",
		"2", "1",
		"0", "0",
	)
	assert.Contains(t, out, "Company created with ID 1")
	assert.Contains(t, out, "Company updated.")
	assert.Contains(t, out, "Type: Developer & Publisher")
	assert.Contains(t, out, "CEO: Gabe Newell")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "The Elder...", truncate("The Elder Scrolls V: Skyrim", 12))
	assert.Equal(t, "Сталкер", truncate("Сталкер", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
