// Package outlets provides database operations for media outlets.
package outlets

import (
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var (
	writeMessages = database.Messages{
		Duplicate: "media outlet with this name already exists",
	}
	deleteMessages = database.Messages{
		ForeignKey: "media outlet still has reviews",
	}
)

type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new media outlets repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll() ([]entities.MediaOutlet, error) {
	var outlets []entities.MediaOutlet
	if err := r.db.Order("id").Find(&outlets).Error; err != nil {
		return nil, database.Classify("list media outlets", err, database.Messages{})
	}
	return outlets, nil
}

func (r *Repository) FindByID(id int64) (entities.MediaOutlet, bool, error) {
	var outlets []entities.MediaOutlet
	if err := r.db.Where("id = ?", id).Limit(1).Find(&outlets).Error; err != nil {
		return entities.MediaOutlet{}, false, database.Classify("find media outlet", err, database.Messages{})
	}
	if len(outlets) == 0 {
		return entities.MediaOutlet{}, false, nil
	}
	return outlets[0], true, nil
}

func (r *Repository) Create(outlet entities.MediaOutlet) (int64, error) {
	if err := outlet.Validate(); err != nil {
		return 0, err
	}
	outlet.ID = 0
	if err := r.db.Create(&outlet).Error; err != nil {
		return 0, database.Classify("create media outlet", err, writeMessages)
	}
	return outlet.ID, nil
}

func (r *Repository) Update(outlet entities.MediaOutlet) error {
	if err := outlet.Validate(); err != nil {
		return err
	}
	err := r.db.Model(&entities.MediaOutlet{}).Where("id = ?", outlet.ID).Updates(map[string]any{
		"name":         outlet.Name,
		"website_url":  outlet.WebsiteURL,
		"founded_year": outlet.FoundedYear,
	}).Error
	return database.Classify("update media outlet", err, writeMessages)
}

// Delete removes the outlet. It fails with a foreign key violation while
// reviews still reference it.
func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&entities.MediaOutlet{}, id).Error
	return database.Classify("delete media outlet", err, deleteMessages)
}
