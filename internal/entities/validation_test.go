package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNewGame(t *testing.T) {
	noID := datatypes.Null[int64]{}

	t.Run("valid game is trimmed", func(t *testing.T) {
		g, err := NewGame("  Hades ", 2020, datatypes.NewNull("roguelike"), datatypes.NewNull[int64](3), noID)
		require.NoError(t, err)
		assert.Equal(t, "Hades", g.Title)
		assert.Equal(t, int64(3), g.DeveloperID.V)
		assert.False(t, g.PublisherID.Valid)
	})

	tests := []struct {
		name  string
		title string
		year  int
		field string
	}{
		{"blank title", "   ", 2000, "title"},
		{"year before range", "Pong", 1900, "release year"},
		{"year after range", "Future", 2101, "release year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGame(tt.title, tt.year, datatypes.Null[string]{}, noID, noID)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "game", verr.Entity)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := NewGame("Early", MinReleaseYear, datatypes.Null[string]{}, noID, noID)
		assert.NoError(t, err)
		_, err = NewGame("Late", MaxYear, datatypes.Null[string]{}, noID, noID)
		assert.NoError(t, err)
	})
}

func TestGame_CopyHelpers(t *testing.T) {
	g := Game{Title: "Celeste", ReleaseYear: 2018}
	genres := []string{"Platformer"}

	withGenres := g.WithGenres(genres)
	genres[0] = "mutated"

	assert.Nil(t, g.Genres)
	assert.Equal(t, []string{"Platformer"}, withGenres.Genres)

	rated := withGenres.WithAverageRating(datatypes.NewNull(91.5)).WithID(7)
	assert.Equal(t, int64(7), rated.ID)
	assert.Equal(t, 91.5, rated.AverageRating.V)
	assert.False(t, withGenres.AverageRating.Valid)
	assert.Zero(t, withGenres.ID)
}

func TestNewReview(t *testing.T) {
	_, err := NewReview(1, 1, 150, datatypes.Null[string]{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "score", verr.Field)

	_, err = NewReview(1, 1, -1, datatypes.Null[string]{})
	assert.Error(t, err)

	r, err := NewReview(1, 2, 0, datatypes.NewNull("harsh"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Score)

	_, err = NewReview(1, 2, 100, datatypes.Null[string]{})
	assert.NoError(t, err)
}

func TestNewProductionCompany(t *testing.T) {
	none := datatypes.Null[string]{}

	_, err := NewProductionCompany("", datatypes.Null[int64]{}, none, none, datatypes.Null[int64]{})
	assert.Error(t, err)

	_, err = NewProductionCompany("Old Co", datatypes.NewNull[int64](1899), none, none, datatypes.Null[int64]{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "founded year", verr.Field)

	c, err := NewProductionCompany("Valve", datatypes.NewNull[int64](1996), datatypes.NewNull("https://valvesoftware.com"), none, datatypes.NewNull[int64](3))
	require.NoError(t, err)
	assert.Equal(t, "Valve", c.Name)
}

func TestNewMediaOutlet(t *testing.T) {
	_, err := NewMediaOutlet(" ", datatypes.Null[string]{}, datatypes.Null[int64]{})
	assert.Error(t, err)

	_, err = NewMediaOutlet("IGN", datatypes.Null[string]{}, datatypes.NewNull[int64](2101))
	assert.Error(t, err)

	o, err := NewMediaOutlet("IGN", datatypes.Null[string]{}, datatypes.Null[int64]{})
	require.NoError(t, err)
	assert.False(t, o.FoundedYear.Valid)
}

func TestNewSystemRequirement(t *testing.T) {
	noFloat := datatypes.Null[float64]{}
	noInt := datatypes.Null[int64]{}

	tests := []struct {
		name    string
		storage int
		ram     int
		cpu     datatypes.Null[float64]
		gpu     datatypes.Null[float64]
		vram    datatypes.Null[int64]
		field   string
	}{
		{"zero storage", 0, 8, noFloat, noFloat, noInt, "storage"},
		{"zero ram", 50, 0, noFloat, noFloat, noInt, "RAM"},
		{"zero cpu", 50, 8, datatypes.NewNull(0.0), noFloat, noInt, "CPU GHz"},
		{"negative gpu", 50, 8, noFloat, datatypes.NewNull(-1.0), noInt, "GPU TFLOPS"},
		{"negative vram", 50, 8, noFloat, noFloat, datatypes.NewNull[int64](-2), "VRAM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystemRequirement(1, 1, tt.storage, tt.ram, tt.cpu, tt.gpu, tt.vram)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	r, err := NewSystemRequirement(1, 2, 70, 16, datatypes.NewNull(3.6), noFloat, datatypes.NewNull[int64](0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.TypeID)
}

func TestNewGenre(t *testing.T) {
	_, err := NewGenre("")
	assert.Error(t, err)

	g, err := NewGenre(" RPG ")
	require.NoError(t, err)
	assert.Equal(t, "RPG", g.Name)
}
