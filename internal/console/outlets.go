package console

import (
	"fmt"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func (s *Shell) outletsMenu() error {
	return s.menu("MEDIA OUTLETS", "Back to main menu", []menuItem{
		{"List all media outlets", s.listOutlets},
		{"Find a media outlet by ID", s.findOutlet},
		{"Add a new media outlet", s.createOutlet},
		{"Edit a media outlet", s.editOutlet},
		{"Delete a media outlet", s.deleteOutlet},
	})
}

func (s *Shell) listOutlets() error {
	s.subHeader("All media outlets")
	outlets, err := s.catalog.MediaOutlets.GetAllMediaOutlets()
	if err != nil {
		s.report("list media outlets", err)
		return nil
	}
	if len(outlets) == 0 {
		s.warning("No media outlets found.")
		return nil
	}
	rows := make([][]string, 0, len(outlets))
	for _, o := range outlets {
		rows = append(rows, []string{
			fmtID(o.ID),
			truncate(o.Name, 25),
			nullInt(o.FoundedYear),
			truncate(nullString(o.WebsiteURL), 35),
		})
	}
	s.renderTable([]string{"ID", "Name", "Founded", "Website"}, rows)
	s.info("Total media outlets: %d", len(outlets))
	return nil
}

func (s *Shell) findOutlet() error {
	outletID, err := s.prompt.ReadID("Media outlet ID: ")
	if err != nil {
		return err
	}
	s.showOutlet(outletID)
	return nil
}

func (s *Shell) showOutlet(outletID int64) {
	outlet, ok, err := s.catalog.MediaOutlets.GetMediaOutletByID(outletID)
	if err != nil {
		s.report("load the media outlet", err)
		return
	}
	if !ok {
		s.notFound("Media outlet", outletID)
		return
	}
	s.header("Media outlet details")
	s.field("ID", fmtID(outlet.ID))
	s.field("Name", outlet.Name)
	if outlet.WebsiteURL.Valid && outlet.WebsiteURL.V != "" {
		s.field("Website", outlet.WebsiteURL.V)
	}
	if outlet.FoundedYear.Valid {
		s.field("Founded", fmtID(outlet.FoundedYear.V))
	}
	s.separator()
}

func (s *Shell) createOutlet() error {
	s.subHeader("Add a new media outlet")
	name, err := s.prompt.ReadNonEmpty("Name: ")
	if err != nil {
		return err
	}
	website, err := s.prompt.ReadOptionalString("Website (Enter to skip): ")
	if err != nil {
		return err
	}
	founded, err := s.prompt.ReadOptionalInt("Founded year (Enter to skip): ", entities.MinFoundedYear, entities.MaxYear)
	if err != nil {
		return err
	}
	outlet, err := entities.NewMediaOutlet(name, website, founded)
	if err != nil {
		s.report("create the media outlet", err)
		return nil
	}
	outletID, err := s.catalog.MediaOutlets.CreateMediaOutlet(outlet)
	if err != nil {
		s.report("create the media outlet", err)
		return nil
	}
	s.success("Media outlet created with ID %d", outletID)
	return nil
}

func (s *Shell) editOutlet() error {
	s.subHeader("Edit a media outlet")
	outletID, err := s.prompt.ReadID("Media outlet ID: ")
	if err != nil {
		return err
	}
	outlet, ok, err := s.catalog.MediaOutlets.GetMediaOutletByID(outletID)
	if err != nil {
		s.report("load the media outlet", err)
		return nil
	}
	if !ok {
		s.notFound("Media outlet", outletID)
		return nil
	}

	fmt.Fprintln(s.out, "\nCurrent values:")
	s.field("Name", outlet.Name)
	s.field("Website", nullString(outlet.WebsiteURL))
	s.field("Founded", nullInt(outlet.FoundedYear))
	fmt.Fprintln(s.out, "\nLeave a field empty to keep its value.")

	name, err := s.prompt.ReadString("New name: ")
	if err != nil {
		return err
	}
	if name == "" {
		name = outlet.Name
	}
	website, err := s.prompt.ReadOptionalString("New website: ")
	if err != nil {
		return err
	}
	founded, err := s.prompt.ReadOptionalInt("New founded year: ", entities.MinFoundedYear, entities.MaxYear)
	if err != nil {
		return err
	}

	updated, err := entities.NewMediaOutlet(name, keepString(website, outlet.WebsiteURL), keepInt(founded, outlet.FoundedYear))
	if err != nil {
		s.report("update the media outlet", err)
		return nil
	}
	if err := s.catalog.MediaOutlets.UpdateMediaOutlet(updated.WithID(outletID)); err != nil {
		s.report("update the media outlet", err)
		return nil
	}
	s.success("Media outlet updated.")
	return nil
}

func (s *Shell) deleteOutlet() error {
	s.subHeader("Delete a media outlet")
	outletID, err := s.prompt.ReadID("Media outlet ID: ")
	if err != nil {
		return err
	}
	outlet, ok, err := s.catalog.MediaOutlets.GetMediaOutletByID(outletID)
	if err != nil {
		s.report("load the media outlet", err)
		return nil
	}
	if !ok {
		s.notFound("Media outlet", outletID)
		return nil
	}
	confirmed, err := s.confirm("the media outlet: " + outlet.Name)
	if err != nil || !confirmed {
		return err
	}
	if err := s.catalog.MediaOutlets.DeleteMediaOutlet(outletID); err != nil {
		s.report("delete the media outlet", err)
		return nil
	}
	s.success("Media outlet deleted.")
	return nil
}
