// Package reviews provides database operations for critic reviews and the
// per-game score aggregate.
package reviews

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var writeMessages = database.Messages{
	Duplicate:  "review from this outlet for this game already exists",
	ForeignKey: "nonexistent game or media outlet",
}

// Repository handles review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withNames() *gorm.DB {
	return r.db.Table("reviews AS r").
		Select("r.*, mo.name AS media_outlet_name, g.title AS game_title").
		Joins("JOIN media_outlets mo ON mo.id = r.media_outlet_id").
		Joins("JOIN games g ON g.id = r.game_id")
}

// FindAll returns every review ordered by game title, best score first.
func (r *Repository) FindAll() ([]entities.Review, error) {
	var reviews []entities.Review
	if err := r.withNames().Order("g.title").Order("r.score DESC").Order("r.id").Find(&reviews).Error; err != nil {
		return nil, database.Classify("list reviews", err, database.Messages{})
	}
	return reviews, nil
}

func (r *Repository) FindByID(id int64) (entities.Review, bool, error) {
	var reviews []entities.Review
	if err := r.withNames().Where("r.id = ?", id).Limit(1).Find(&reviews).Error; err != nil {
		return entities.Review{}, false, database.Classify("find review", err, database.Messages{})
	}
	if len(reviews) == 0 {
		return entities.Review{}, false, nil
	}
	return reviews[0], true, nil
}

// FindByGameID returns the reviews of one game, best score first.
func (r *Repository) FindByGameID(gameID int64) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.withNames().Where("r.game_id = ?", gameID).Order("r.score DESC").Order("r.id").Find(&reviews).Error
	if err != nil {
		return nil, database.Classify("list reviews of game", err, database.Messages{})
	}
	return reviews, nil
}

// AverageScore returns the mean score of a game's reviews. The result is
// not valid when the game has no reviews.
func (r *Repository) AverageScore(gameID int64) (datatypes.Null[float64], error) {
	var avg datatypes.Null[float64]
	err := r.db.Model(&entities.Review{}).
		Select("AVG(score)").
		Where("game_id = ?", gameID).
		Row().
		Scan(&avg)
	if err != nil {
		return datatypes.Null[float64]{}, database.Classify("average score", err, database.Messages{})
	}
	return avg, nil
}

func (r *Repository) Create(review entities.Review) (int64, error) {
	if err := review.Validate(); err != nil {
		return 0, err
	}
	review.ID = 0
	if err := r.db.Create(&review).Error; err != nil {
		return 0, database.Classify("create review", err, writeMessages)
	}
	return review.ID, nil
}

// Update rewrites score and summary only. The game and outlet of a review
// never change.
func (r *Repository) Update(review entities.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	err := r.db.Model(&entities.Review{}).Where("id = ?", review.ID).Updates(map[string]any{
		"score":   review.Score,
		"summary": review.Summary,
	}).Error
	return database.Classify("update review", err, writeMessages)
}

func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&entities.Review{}, id).Error
	return database.Classify("delete review", err, database.Messages{})
}
