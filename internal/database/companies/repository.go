// Package companies provides database operations for production companies.
package companies

import (
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var writeMessages = database.Messages{
	Duplicate:  "company with this name already exists",
	ForeignKey: "nonexistent company type",
}

// Repository handles production company database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new companies repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withType() *gorm.DB {
	return r.db.Table("production_companies AS pc").
		Select("pc.*, ct.name AS company_type_name").
		Joins("LEFT JOIN company_types ct ON ct.id = pc.company_type_id")
}

// FindAll returns every company with its type name, ordered by id.
func (r *Repository) FindAll() ([]entities.ProductionCompany, error) {
	var companies []entities.ProductionCompany
	if err := r.withType().Order("pc.id").Find(&companies).Error; err != nil {
		return nil, database.Classify("list companies", err, database.Messages{})
	}
	return companies, nil
}

func (r *Repository) FindByID(id int64) (entities.ProductionCompany, bool, error) {
	var companies []entities.ProductionCompany
	if err := r.withType().Where("pc.id = ?", id).Limit(1).Find(&companies).Error; err != nil {
		return entities.ProductionCompany{}, false, database.Classify("find company", err, database.Messages{})
	}
	if len(companies) == 0 {
		return entities.ProductionCompany{}, false, nil
	}
	return companies[0], true, nil
}

func (r *Repository) Create(company entities.ProductionCompany) (int64, error) {
	if err := company.Validate(); err != nil {
		return 0, err
	}
	company.ID = 0
	if err := r.db.Create(&company).Error; err != nil {
		return 0, database.Classify("create company", err, writeMessages)
	}
	return company.ID, nil
}

func (r *Repository) Update(company entities.ProductionCompany) error {
	if err := company.Validate(); err != nil {
		return err
	}
	err := r.db.Model(&entities.ProductionCompany{}).Where("id = ?", company.ID).Updates(map[string]any{
		"name":            company.Name,
		"founded_year":    company.FoundedYear,
		"website_url":     company.WebsiteURL,
		"ceo":             company.CEO,
		"company_type_id": company.CompanyTypeID,
	}).Error
	return database.Classify("update company", err, writeMessages)
}

// Delete removes the company. Games it developed or published keep their
// rows with the reference cleared.
func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&entities.ProductionCompany{}, id).Error
	return database.Classify("delete company", err, database.Messages{})
}
