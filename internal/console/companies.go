package console

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func (s *Shell) companiesMenu() error {
	return s.menu("COMPANIES", "Back to main menu", []menuItem{
		{"List all companies", s.listCompanies},
		{"Find a company by ID", s.findCompany},
		{"Add a new company", s.createCompany},
		{"Edit a company", s.editCompany},
		{"Delete a company", s.deleteCompany},
	})
}

func (s *Shell) listCompanies() error {
	s.subHeader("All companies")
	companies, err := s.catalog.Companies.GetAllCompanies()
	if err != nil {
		s.report("list companies", err)
		return nil
	}
	if len(companies) == 0 {
		s.warning("No companies found.")
		return nil
	}
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, []string{
			fmtID(c.ID),
			truncate(c.Name, 25),
			nullInt(c.FoundedYear),
			truncate(nullString(c.CompanyTypeName), 22),
			truncate(nullString(c.WebsiteURL), 30),
		})
	}
	s.renderTable([]string{"ID", "Name", "Founded", "Type", "Website"}, rows)
	s.info("Total companies: %d", len(companies))
	return nil
}

func (s *Shell) findCompany() error {
	companyID, err := s.prompt.ReadID("Company ID: ")
	if err != nil {
		return err
	}
	s.showCompany(companyID)
	return nil
}

func (s *Shell) showCompany(companyID int64) {
	company, ok, err := s.catalog.Companies.GetCompanyByID(companyID)
	if err != nil {
		s.report("load the company", err)
		return
	}
	if !ok {
		s.notFound("Company", companyID)
		return
	}
	s.header("Company details")
	s.field("ID", fmtID(company.ID))
	s.field("Name", company.Name)
	if company.FoundedYear.Valid {
		s.field("Founded", fmtID(company.FoundedYear.V))
	}
	if company.WebsiteURL.Valid && company.WebsiteURL.V != "" {
		s.field("Website", company.WebsiteURL.V)
	}
	if company.CEO.Valid && company.CEO.V != "" {
		s.field("CEO", company.CEO.V)
	}
	if company.CompanyTypeName.Valid {
		s.field("Type", company.CompanyTypeName.V)
	}
	s.separator()
}

// pickCompanyType lists the seeded types and reads an optional choice.
func (s *Shell) pickCompanyType(prompt string) (datatypes.Null[int64], error) {
	types, err := s.catalog.CompanyTypes.GetAllCompanyTypes()
	if err != nil {
		s.report("list company types", err)
		return datatypes.Null[int64]{}, nil
	}
	fmt.Fprintln(s.out, "\nCompany types:")
	for _, t := range types {
		fmt.Fprintf(s.out, "%d. %s\n", t.ID, t.Name)
	}
	return s.prompt.ReadOptionalInt(prompt, 1, maxID)
}

func (s *Shell) createCompany() error {
	s.subHeader("Add a new company")
	name, err := s.prompt.ReadNonEmpty("Name: ")
	if err != nil {
		return err
	}
	founded, err := s.prompt.ReadOptionalInt("Founded year (Enter to skip): ", entities.MinFoundedYear, entities.MaxYear)
	if err != nil {
		return err
	}
	website, err := s.prompt.ReadOptionalString("Website (Enter to skip): ")
	if err != nil {
		return err
	}
	ceo, err := s.prompt.ReadOptionalString("CEO (Enter to skip): ")
	if err != nil {
		return err
	}
	typeID, err := s.pickCompanyType("Type ID (Enter to skip): ")
	if err != nil {
		return err
	}

	company, err := entities.NewProductionCompany(name, founded, website, ceo, typeID)
	if err != nil {
		s.report("create the company", err)
		return nil
	}
	companyID, err := s.catalog.Companies.CreateCompany(company)
	if err != nil {
		s.report("create the company", err)
		return nil
	}
	s.success("Company created with ID %d", companyID)
	return nil
}

func (s *Shell) editCompany() error {
	s.subHeader("Edit a company")
	companyID, err := s.prompt.ReadID("Company ID: ")
	if err != nil {
		return err
	}
	company, ok, err := s.catalog.Companies.GetCompanyByID(companyID)
	if err != nil {
		s.report("load the company", err)
		return nil
	}
	if !ok {
		s.notFound("Company", companyID)
		return nil
	}

	fmt.Fprintln(s.out, "\nCurrent values:")
	s.field("Name", company.Name)
	s.field("Founded", nullInt(company.FoundedYear))
	s.field("Website", nullString(company.WebsiteURL))
	s.field("CEO", nullString(company.CEO))
	s.field("Type", nullString(company.CompanyTypeName))
	fmt.Fprintln(s.out, "\nLeave a field empty to keep its value.")

	name, err := s.prompt.ReadString("New name: ")
	if err != nil {
		return err
	}
	if name == "" {
		name = company.Name
	}
	founded, err := s.prompt.ReadOptionalInt("New founded year: ", entities.MinFoundedYear, entities.MaxYear)
	if err != nil {
		return err
	}
	website, err := s.prompt.ReadOptionalString("New website: ")
	if err != nil {
		return err
	}
	ceo, err := s.prompt.ReadOptionalString("New CEO: ")
	if err != nil {
		return err
	}
	typeID, err := s.pickCompanyType("New type ID: ")
	if err != nil {
		return err
	}

	updated, err := entities.NewProductionCompany(
		name,
		keepInt(founded, company.FoundedYear),
		keepString(website, company.WebsiteURL),
		keepString(ceo, company.CEO),
		keepInt(typeID, company.CompanyTypeID),
	)
	if err != nil {
		s.report("update the company", err)
		return nil
	}
	if err := s.catalog.Companies.UpdateCompany(updated.WithID(companyID)); err != nil {
		s.report("update the company", err)
		return nil
	}
	s.success("Company updated.")
	return nil
}

func (s *Shell) deleteCompany() error {
	s.subHeader("Delete a company")
	companyID, err := s.prompt.ReadID("Company ID: ")
	if err != nil {
		return err
	}
	company, ok, err := s.catalog.Companies.GetCompanyByID(companyID)
	if err != nil {
		s.report("load the company", err)
		return nil
	}
	if !ok {
		s.notFound("Company", companyID)
		return nil
	}
	fmt.Fprintln(s.out, "Games developed or published by it keep their rows with the company cleared.")
	confirmed, err := s.confirm("the company: " + company.Name)
	if err != nil || !confirmed {
		return err
	}
	if err := s.catalog.Companies.DeleteCompany(companyID); err != nil {
		s.report("delete the company", err)
		return nil
	}
	s.success("Company deleted.")
	return nil
}

func keepString(v, current datatypes.Null[string]) datatypes.Null[string] {
	if v.Valid {
		return v
	}
	return current
}

func keepInt(v, current datatypes.Null[int64]) datatypes.Null[int64] {
	if v.Valid {
		return v
	}
	return current
}

func keepFloat(v, current datatypes.Null[float64]) datatypes.Null[float64] {
	if v.Valid {
		return v
	}
	return current
}
