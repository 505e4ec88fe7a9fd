package entities

import (
	"strings"

	"gorm.io/datatypes"
)

// Game is a catalog entry. DeveloperName and PublisherName are filled by
// joins on read; Genres and AverageRating only by the full details view.
type Game struct {
	ID          int64                  `gorm:"primaryKey"`
	Title       string                 `gorm:"column:title"`
	ReleaseYear int                    `gorm:"column:release_year"`
	Description datatypes.Null[string] `gorm:"column:description"`
	DeveloperID datatypes.Null[int64]  `gorm:"column:developer_id"`
	PublisherID datatypes.Null[int64]  `gorm:"column:publisher_id"`

	DeveloperName datatypes.Null[string] `gorm:"->;column:developer_name"`
	PublisherName datatypes.Null[string] `gorm:"->;column:publisher_name"`

	Genres        []string                `gorm:"-"`
	AverageRating datatypes.Null[float64] `gorm:"-"`
}

func (Game) TableName() string {
	return "games"
}

// NewGame builds a validated game without an id.
func NewGame(title string, releaseYear int, description datatypes.Null[string], developerID, publisherID datatypes.Null[int64]) (Game, error) {
	g := Game{
		Title:       strings.TrimSpace(title),
		ReleaseYear: releaseYear,
		Description: description,
		DeveloperID: developerID,
		PublisherID: publisherID,
	}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

func (g Game) Validate() error {
	if err := requireName("game", "title", g.Title); err != nil {
		return err
	}
	return requireYear("game", "release year", g.ReleaseYear, MinReleaseYear)
}

func (g Game) WithID(id int64) Game {
	g.ID = id
	return g
}

func (g Game) WithGenres(genres []string) Game {
	g.Genres = append([]string(nil), genres...)
	return g
}

func (g Game) WithAverageRating(rating datatypes.Null[float64]) Game {
	g.AverageRating = rating
	return g
}

// GameGenre is one row of the games_genres join table.
type GameGenre struct {
	GameID  int64 `gorm:"primaryKey;column:game_id;autoIncrement:false"`
	GenreID int64 `gorm:"primaryKey;column:genre_id;autoIncrement:false"`
}

func (GameGenre) TableName() string {
	return "games_genres"
}
