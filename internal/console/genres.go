package console

import (
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func (s *Shell) genresMenu() error {
	return s.menu("GENRES", "Back to main menu", []menuItem{
		{"List all genres", s.listGenres},
		{"Find a genre by ID", s.findGenre},
		{"Add a new genre", s.createGenre},
		{"Rename a genre", s.editGenre},
		{"Delete a genre", s.deleteGenre},
	})
}

func (s *Shell) listGenres() error {
	s.subHeader("All genres")
	genres, err := s.catalog.Genres.GetAllGenres()
	if err != nil {
		s.report("list genres", err)
		return nil
	}
	if len(genres) == 0 {
		s.warning("No genres found.")
		return nil
	}
	rows := make([][]string, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []string{fmtID(g.ID), truncate(g.Name, 40)})
	}
	s.renderTable([]string{"ID", "Name"}, rows)
	s.info("Total genres: %d", len(genres))
	return nil
}

func (s *Shell) findGenre() error {
	genreID, err := s.prompt.ReadID("Genre ID: ")
	if err != nil {
		return err
	}
	genre, ok, err := s.catalog.Genres.GetGenreByID(genreID)
	if err != nil {
		s.report("load the genre", err)
		return nil
	}
	if !ok {
		s.notFound("Genre", genreID)
		return nil
	}
	s.field("ID", fmtID(genre.ID))
	s.field("Name", genre.Name)
	return nil
}

func (s *Shell) createGenre() error {
	s.subHeader("Add a new genre")
	name, err := s.prompt.ReadNonEmpty("Name: ")
	if err != nil {
		return err
	}
	genre, err := entities.NewGenre(name)
	if err != nil {
		s.report("create the genre", err)
		return nil
	}
	genreID, err := s.catalog.Genres.CreateGenre(genre)
	if err != nil {
		s.report("create the genre", err)
		return nil
	}
	s.success("Genre created with ID %d", genreID)
	return nil
}

func (s *Shell) editGenre() error {
	s.subHeader("Rename a genre")
	genreID, err := s.prompt.ReadID("Genre ID: ")
	if err != nil {
		return err
	}
	genre, ok, err := s.catalog.Genres.GetGenreByID(genreID)
	if err != nil {
		s.report("load the genre", err)
		return nil
	}
	if !ok {
		s.notFound("Genre", genreID)
		return nil
	}
	s.field("Current name", genre.Name)
	name, err := s.prompt.ReadString("New name (Enter to keep): ")
	if err != nil {
		return err
	}
	if name == "" {
		s.info("Genre unchanged.")
		return nil
	}
	updated, err := entities.NewGenre(name)
	if err != nil {
		s.report("update the genre", err)
		return nil
	}
	if err := s.catalog.Genres.UpdateGenre(updated.WithID(genreID)); err != nil {
		s.report("update the genre", err)
		return nil
	}
	s.success("Genre updated.")
	return nil
}

func (s *Shell) deleteGenre() error {
	s.subHeader("Delete a genre")
	genreID, err := s.prompt.ReadID("Genre ID: ")
	if err != nil {
		return err
	}
	genre, ok, err := s.catalog.Genres.GetGenreByID(genreID)
	if err != nil {
		s.report("load the genre", err)
		return nil
	}
	if !ok {
		s.notFound("Genre", genreID)
		return nil
	}
	confirmed, err := s.confirm("the genre: " + genre.Name)
	if err != nil || !confirmed {
		return err
	}
	if err := s.catalog.Genres.DeleteGenre(genreID); err != nil {
		s.report("delete the genre", err)
		return nil
	}
	s.success("Genre deleted.")
	return nil
}
