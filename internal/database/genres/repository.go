// Package genres provides database operations for genres.
package genres

import (
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var writeMessages = database.Messages{
	Duplicate: "genre with this name already exists",
}

type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll() ([]entities.Genre, error) {
	var genres []entities.Genre
	if err := r.db.Order("id").Find(&genres).Error; err != nil {
		return nil, database.Classify("list genres", err, database.Messages{})
	}
	return genres, nil
}

func (r *Repository) FindByID(id int64) (entities.Genre, bool, error) {
	var genres []entities.Genre
	if err := r.db.Where("id = ?", id).Limit(1).Find(&genres).Error; err != nil {
		return entities.Genre{}, false, database.Classify("find genre", err, database.Messages{})
	}
	if len(genres) == 0 {
		return entities.Genre{}, false, nil
	}
	return genres[0], true, nil
}

// FindByGameID returns the genres linked to a game, ordered by genre id.
func (r *Repository) FindByGameID(gameID int64) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Table("genres AS g").
		Select("g.id, g.name").
		Joins("JOIN games_genres gg ON gg.genre_id = g.id").
		Where("gg.game_id = ?", gameID).
		Order("g.id").
		Find(&genres).Error
	if err != nil {
		return nil, database.Classify("list genres of game", err, database.Messages{})
	}
	return genres, nil
}

func (r *Repository) Create(genre entities.Genre) (int64, error) {
	if err := genre.Validate(); err != nil {
		return 0, err
	}
	genre.ID = 0
	if err := r.db.Create(&genre).Error; err != nil {
		return 0, database.Classify("create genre", err, writeMessages)
	}
	return genre.ID, nil
}

func (r *Repository) Update(genre entities.Genre) error {
	if err := genre.Validate(); err != nil {
		return err
	}
	err := r.db.Model(&entities.Genre{}).Where("id = ?", genre.ID).Update("name", genre.Name).Error
	return database.Classify("update genre", err, writeMessages)
}

// Delete removes the genre and unlinks it from every game.
func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&entities.Genre{}, id).Error
	return database.Classify("delete genre", err, database.Messages{})
}
