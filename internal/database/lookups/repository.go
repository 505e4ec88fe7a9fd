// Package lookups reads the seeded lookup tables: company types and
// system requirement tiers. The application never writes them.
package lookups

import (
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// CompanyTypeRepository reads company_types.
type CompanyTypeRepository struct {
	db *gorm.DB
}

func NewCompanyTypeRepository(db *gorm.DB) *CompanyTypeRepository {
	return &CompanyTypeRepository{db: db}
}

func (r *CompanyTypeRepository) FindAll() ([]entities.CompanyType, error) {
	return findAll[entities.CompanyType](r.db, "list company types")
}

func (r *CompanyTypeRepository) FindByID(id int64) (entities.CompanyType, bool, error) {
	return findByID[entities.CompanyType](r.db, id, "find company type")
}

// RequirementTypeRepository reads system_requirement_types.
type RequirementTypeRepository struct {
	db *gorm.DB
}

func NewRequirementTypeRepository(db *gorm.DB) *RequirementTypeRepository {
	return &RequirementTypeRepository{db: db}
}

func (r *RequirementTypeRepository) FindAll() ([]entities.SystemRequirementType, error) {
	return findAll[entities.SystemRequirementType](r.db, "list requirement types")
}

func (r *RequirementTypeRepository) FindByID(id int64) (entities.SystemRequirementType, bool, error) {
	return findByID[entities.SystemRequirementType](r.db, id, "find requirement type")
}

func findAll[T any](db *gorm.DB, op string) ([]T, error) {
	var rows []T
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, database.Classify(op, err, database.Messages{})
	}
	return rows, nil
}

func findByID[T any](db *gorm.DB, id int64, op string) (T, bool, error) {
	var rows []T
	var zero T
	if err := db.Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return zero, false, database.Classify(op, err, database.Messages{})
	}
	if len(rows) == 0 {
		return zero, false, nil
	}
	return rows[0], true, nil
}
