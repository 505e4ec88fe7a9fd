package services

import (
	"fmt"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// GameService manages games and composes the full details view.
type GameService struct {
	recorder
	games        GameStore
	genres       *GenreService
	reviews      *ReviewService
	requirements *RequirementService
}

// NewGameService wires the game store with the services it composes.
// audit may be nil.
func NewGameService(games GameStore, genres *GenreService, reviews *ReviewService, requirements *RequirementService, audit AuditRecorder) *GameService {
	return &GameService{
		recorder:     recorder{audit: audit},
		games:        games,
		genres:       genres,
		reviews:      reviews,
		requirements: requirements,
	}
}

// GetAllGames returns every game ordered by id.
func (s *GameService) GetAllGames() ([]entities.Game, error) {
	games, err := s.games.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(games, func(g entities.Game) int64 { return g.ID }), nil
}

func (s *GameService) GetGameByID(id int64) (entities.Game, bool, error) {
	return s.games.FindByID(id)
}

func (s *GameService) SearchGames(query string) ([]entities.Game, error) {
	games, err := s.games.SearchByTitle(query)
	if err != nil {
		return nil, err
	}
	return sortByID(games, func(g entities.Game) int64 { return g.ID }), nil
}

// GetGameWithFullDetails returns the game with genre names and average
// rating attached, or false when the game does not exist.
func (s *GameService) GetGameWithFullDetails(id int64) (entities.Game, bool, error) {
	game, ok, err := s.games.FindByID(id)
	if err != nil || !ok {
		return entities.Game{}, false, err
	}

	names, err := s.genres.GetGenreNamesByGameID(id)
	if err != nil {
		return entities.Game{}, false, fmt.Errorf("load genres of game %d: %w", id, err)
	}

	avg, err := s.reviews.GetAverageScoreForGame(id)
	if err != nil {
		return entities.Game{}, false, fmt.Errorf("load rating of game %d: %w", id, err)
	}

	return game.WithGenres(names).WithAverageRating(avg), true, nil
}

func (s *GameService) CreateGame(game entities.Game) (int64, error) {
	id, err := s.games.Create(game)
	s.record(entities.AuditEventCreate, EntityGame, id, "Created game: "+game.Title, err)
	return id, err
}

// CreateGameWithGenres creates the game and then links the genres. When
// linking fails the game stays and its id is returned with the error.
func (s *GameService) CreateGameWithGenres(game entities.Game, genreIDs []int64) (int64, error) {
	id, err := s.CreateGame(game)
	if err != nil {
		return 0, err
	}
	if len(genreIDs) == 0 {
		return id, nil
	}
	if err := s.UpdateGameGenres(id, genreIDs); err != nil {
		return id, err
	}
	return id, nil
}

func (s *GameService) UpdateGame(game entities.Game) error {
	err := s.games.Update(game)
	s.record(entities.AuditEventUpdate, EntityGame, game.ID, "Updated game: "+game.Title, err)
	return err
}

func (s *GameService) DeleteGame(id int64) error {
	err := s.games.Delete(id)
	s.record(entities.AuditEventDelete, EntityGame, id, fmt.Sprintf("Deleted game %d", id), err)
	return err
}

func (s *GameService) AddGenreToGame(gameID, genreID int64) error {
	err := s.games.AddGenre(gameID, genreID)
	s.record(entities.AuditEventUpdate, EntityGame, gameID, fmt.Sprintf("Added genre %d", genreID), err)
	return err
}

func (s *GameService) RemoveGenreFromGame(gameID, genreID int64) error {
	err := s.games.RemoveGenre(gameID, genreID)
	s.record(entities.AuditEventUpdate, EntityGame, gameID, fmt.Sprintf("Removed genre %d", genreID), err)
	return err
}

// UpdateGameGenres replaces the game's genre set atomically.
func (s *GameService) UpdateGameGenres(gameID int64, genreIDs []int64) error {
	err := s.games.ReplaceGenres(gameID, genreIDs)
	s.record(entities.AuditEventUpdate, EntityGame, gameID, fmt.Sprintf("Set genres %v", genreIDs), err)
	return err
}

func (s *GameService) GetGameSystemRequirements(gameID int64) ([]entities.SystemRequirement, error) {
	return s.requirements.GetRequirementsByGameID(gameID)
}
