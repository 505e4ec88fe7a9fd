// Package games provides database operations for the game catalog and its
// genre associations.
//
// # Usage
//
//	repo := games.NewRepository(db.DB)
//	id, err := repo.Create(game)
//	err = repo.ReplaceGenres(id, []int64{1, 4})
package games

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var (
	writeMessages = database.Messages{
		Duplicate:  "game with this title and release year already exists",
		ForeignKey: "nonexistent developer or publisher",
	}
	genreMessages = database.Messages{
		ForeignKey: "nonexistent game or genre",
	}
)

// Repository handles all game database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new games repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withCompanies() *gorm.DB {
	return r.db.Table("games AS g").
		Select("g.*, dev.name AS developer_name, pub.name AS publisher_name").
		Joins("LEFT JOIN production_companies dev ON dev.id = g.developer_id").
		Joins("LEFT JOIN production_companies pub ON pub.id = g.publisher_id")
}

// FindAll returns every game with developer and publisher names, ordered by id.
func (r *Repository) FindAll() ([]entities.Game, error) {
	var games []entities.Game
	if err := r.withCompanies().Order("g.id").Find(&games).Error; err != nil {
		return nil, database.Classify("list games", err, database.Messages{})
	}
	return games, nil
}

// FindByID returns the game and true, or false when no row has the id.
func (r *Repository) FindByID(id int64) (entities.Game, bool, error) {
	var games []entities.Game
	if err := r.withCompanies().Where("g.id = ?", id).Limit(1).Find(&games).Error; err != nil {
		return entities.Game{}, false, database.Classify("find game", err, database.Messages{})
	}
	if len(games) == 0 {
		return entities.Game{}, false, nil
	}
	return games[0], true, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByTitle matches a case-insensitive substring of the title. Both sides
// are folded by the database so the same LOWER rules apply to each; % and _
// in the query match literally.
func (r *Repository) SearchByTitle(query string) ([]entities.Game, error) {
	var games []entities.Game
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(query)) + "%"
	err := r.withCompanies().
		Where(`LOWER(g.title) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("g.id").
		Find(&games).Error
	if err != nil {
		return nil, database.Classify("search games", err, database.Messages{})
	}
	return games, nil
}

// Create inserts the game and returns the generated id.
func (r *Repository) Create(game entities.Game) (int64, error) {
	if err := game.Validate(); err != nil {
		return 0, err
	}
	game.ID = 0
	if err := r.db.Create(&game).Error; err != nil {
		return 0, database.Classify("create game", err, writeMessages)
	}
	return game.ID, nil
}

// Update replaces every stored column of the game with the given id.
// Updating a missing id is not an error.
func (r *Repository) Update(game entities.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	err := r.db.Model(&entities.Game{}).Where("id = ?", game.ID).Updates(map[string]any{
		"title":        game.Title,
		"release_year": game.ReleaseYear,
		"description":  game.Description,
		"developer_id": game.DeveloperID,
		"publisher_id": game.PublisherID,
	}).Error
	return database.Classify("update game", err, writeMessages)
}

// Delete removes the game. Its genre links, reviews and requirement
// profiles go with it.
func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&entities.Game{}, id).Error
	return database.Classify("delete game", err, database.Messages{})
}

// AddGenre links a genre to a game. An existing link is left alone.
func (r *Repository) AddGenre(gameID, genreID int64) error {
	link := entities.GameGenre{GameID: gameID, GenreID: genreID}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	return database.Classify("add genre to game", err, genreMessages)
}

// RemoveGenre unlinks a genre from a game.
func (r *Repository) RemoveGenre(gameID, genreID int64) error {
	err := r.db.Where("game_id = ? AND genre_id = ?", gameID, genreID).Delete(&entities.GameGenre{}).Error
	return database.Classify("remove genre from game", err, database.Messages{})
}

// ReplaceGenres swaps the game's genre set for genreIDs in one transaction.
// On failure the previous links stay in place.
func (r *Repository) ReplaceGenres(gameID int64, genreIDs []int64) error {
	links := genreLinks(gameID, genreIDs)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&entities.GameGenre{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
	return database.Classify("update game genres", err, genreMessages)
}

func genreLinks(gameID int64, genreIDs []int64) []entities.GameGenre {
	seen := make(map[int64]bool, len(genreIDs))
	links := make([]entities.GameGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		links = append(links, entities.GameGenre{GameID: gameID, GenreID: id})
	}
	return links
}
