package entities

import (
	"strings"

	"gorm.io/datatypes"
)

// CompanyType classifies production companies. The table is seeded on
// startup and never written by the application afterwards.
type CompanyType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (CompanyType) TableName() string {
	return "company_types"
}

func (t CompanyType) Validate() error {
	return requireName("company type", "name", t.Name)
}

// ProductionCompany develops and/or publishes games.
type ProductionCompany struct {
	ID            int64                  `gorm:"primaryKey"`
	Name          string                 `gorm:"column:name"`
	FoundedYear   datatypes.Null[int64]  `gorm:"column:founded_year"`
	WebsiteURL    datatypes.Null[string] `gorm:"column:website_url"`
	CEO           datatypes.Null[string] `gorm:"column:ceo"`
	CompanyTypeID datatypes.Null[int64]  `gorm:"column:company_type_id"`

	CompanyTypeName datatypes.Null[string] `gorm:"->;column:company_type_name"`
}

func (ProductionCompany) TableName() string {
	return "production_companies"
}

func NewProductionCompany(name string, foundedYear datatypes.Null[int64], websiteURL, ceo datatypes.Null[string], companyTypeID datatypes.Null[int64]) (ProductionCompany, error) {
	c := ProductionCompany{
		Name:          strings.TrimSpace(name),
		FoundedYear:   foundedYear,
		WebsiteURL:    websiteURL,
		CEO:           ceo,
		CompanyTypeID: companyTypeID,
	}
	if err := c.Validate(); err != nil {
		return ProductionCompany{}, err
	}
	return c, nil
}

func (c ProductionCompany) Validate() error {
	if err := requireName("company", "name", c.Name); err != nil {
		return err
	}
	if c.FoundedYear.Valid {
		return requireYear("company", "founded year", int(c.FoundedYear.V), MinFoundedYear)
	}
	return nil
}

func (c ProductionCompany) WithID(id int64) ProductionCompany {
	c.ID = id
	return c
}
