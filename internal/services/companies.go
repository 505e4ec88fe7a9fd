package services

import (
	"fmt"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

type CompanyService struct {
	recorder
	companies CompanyStore
}

func NewCompanyService(companies CompanyStore, audit AuditRecorder) *CompanyService {
	return &CompanyService{recorder: recorder{audit: audit}, companies: companies}
}

func (s *CompanyService) GetAllCompanies() ([]entities.ProductionCompany, error) {
	companies, err := s.companies.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(companies, func(c entities.ProductionCompany) int64 { return c.ID }), nil
}

func (s *CompanyService) GetCompanyByID(id int64) (entities.ProductionCompany, bool, error) {
	return s.companies.FindByID(id)
}

func (s *CompanyService) CreateCompany(company entities.ProductionCompany) (int64, error) {
	id, err := s.companies.Create(company)
	s.record(entities.AuditEventCreate, EntityCompany, id, "Created company: "+company.Name, err)
	return id, err
}

func (s *CompanyService) UpdateCompany(company entities.ProductionCompany) error {
	err := s.companies.Update(company)
	s.record(entities.AuditEventUpdate, EntityCompany, company.ID, "Updated company: "+company.Name, err)
	return err
}

func (s *CompanyService) DeleteCompany(id int64) error {
	err := s.companies.Delete(id)
	s.record(entities.AuditEventDelete, EntityCompany, id, fmt.Sprintf("Deleted company %d", id), err)
	return err
}

// CompanyTypeService exposes the company type lookup table.
type CompanyTypeService struct {
	types CompanyTypeReader
}

func NewCompanyTypeService(types CompanyTypeReader) *CompanyTypeService {
	return &CompanyTypeService{types: types}
}

func (s *CompanyTypeService) GetAllCompanyTypes() ([]entities.CompanyType, error) {
	types, err := s.types.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(types, func(t entities.CompanyType) int64 { return t.ID }), nil
}

func (s *CompanyTypeService) GetCompanyTypeByID(id int64) (entities.CompanyType, bool, error) {
	return s.types.FindByID(id)
}
