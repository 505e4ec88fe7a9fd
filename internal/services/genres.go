package services

import (
	"fmt"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

type GenreService struct {
	recorder
	genres GenreStore
}

func NewGenreService(genres GenreStore, audit AuditRecorder) *GenreService {
	return &GenreService{recorder: recorder{audit: audit}, genres: genres}
}

func (s *GenreService) GetAllGenres() ([]entities.Genre, error) {
	genres, err := s.genres.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(genres, func(g entities.Genre) int64 { return g.ID }), nil
}

func (s *GenreService) GetGenreByID(id int64) (entities.Genre, bool, error) {
	return s.genres.FindByID(id)
}

func (s *GenreService) GetGenresByGameID(gameID int64) ([]entities.Genre, error) {
	return s.genres.FindByGameID(gameID)
}

// GetGenreNamesByGameID returns the names of the game's genres in genre id order.
func (s *GenreService) GetGenreNamesByGameID(gameID int64) ([]string, error) {
	genres, err := s.genres.FindByGameID(gameID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names, nil
}

func (s *GenreService) CreateGenre(genre entities.Genre) (int64, error) {
	id, err := s.genres.Create(genre)
	s.record(entities.AuditEventCreate, EntityGenre, id, "Created genre: "+genre.Name, err)
	return id, err
}

func (s *GenreService) UpdateGenre(genre entities.Genre) error {
	err := s.genres.Update(genre)
	s.record(entities.AuditEventUpdate, EntityGenre, genre.ID, "Updated genre: "+genre.Name, err)
	return err
}

func (s *GenreService) DeleteGenre(id int64) error {
	err := s.genres.Delete(id)
	s.record(entities.AuditEventDelete, EntityGenre, id, fmt.Sprintf("Deleted genre %d", id), err)
	return err
}
