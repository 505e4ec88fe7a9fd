// Package requirements provides database operations for per-game system
// requirement profiles.
package requirements

import (
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var writeMessages = database.Messages{
	Duplicate:  "requirement profile already exists for this game",
	ForeignKey: "nonexistent game or requirement type",
}

// Repository handles system requirement database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new requirements repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withNames() *gorm.DB {
	return r.db.Table("system_requirements AS sr").
		Select("sr.*, srt.name AS requirement_type, g.title AS game_title").
		Joins("JOIN system_requirement_types srt ON srt.id = sr.system_requirement_type_id").
		Joins("JOIN games g ON g.id = sr.game_id")
}

// FindAll returns every profile ordered by game title, then tier.
func (r *Repository) FindAll() ([]entities.SystemRequirement, error) {
	var reqs []entities.SystemRequirement
	if err := r.withNames().Order("g.title").Order("srt.id").Find(&reqs).Error; err != nil {
		return nil, database.Classify("list requirements", err, database.Messages{})
	}
	return reqs, nil
}

func (r *Repository) FindByID(id int64) (entities.SystemRequirement, bool, error) {
	var reqs []entities.SystemRequirement
	if err := r.withNames().Where("sr.id = ?", id).Limit(1).Find(&reqs).Error; err != nil {
		return entities.SystemRequirement{}, false, database.Classify("find requirement", err, database.Messages{})
	}
	if len(reqs) == 0 {
		return entities.SystemRequirement{}, false, nil
	}
	return reqs[0], true, nil
}

// FindByGameID returns a game's profiles ordered by tier.
func (r *Repository) FindByGameID(gameID int64) ([]entities.SystemRequirement, error) {
	var reqs []entities.SystemRequirement
	if err := r.withNames().Where("sr.game_id = ?", gameID).Order("srt.id").Find(&reqs).Error; err != nil {
		return nil, database.Classify("list requirements of game", err, database.Messages{})
	}
	return reqs, nil
}

func (r *Repository) Create(req entities.SystemRequirement) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	req.ID = 0
	if err := r.db.Create(&req).Error; err != nil {
		return 0, database.Classify("create requirement", err, writeMessages)
	}
	return req.ID, nil
}

// Update rewrites the hardware figures. Game and tier stay as they are.
func (r *Repository) Update(req entities.SystemRequirement) error {
	if err := req.Validate(); err != nil {
		return err
	}
	err := r.db.Model(&entities.SystemRequirement{}).Where("id = ?", req.ID).Updates(map[string]any{
		"storage_gb": req.StorageGB,
		"ram_gb":     req.RAMGB,
		"cpu_ghz":    req.CPUGHz,
		"gpu_tflops": req.GPUTflops,
		"vram_gb":    req.VRAMGB,
	}).Error
	return database.Classify("update requirement", err, writeMessages)
}

func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&entities.SystemRequirement{}, id).Error
	return database.Classify("delete requirement", err, database.Messages{})
}
