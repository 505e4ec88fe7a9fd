package services

import (
	"errors"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var errStore = errors.New("store unavailable")

type auditCall struct {
	eventType  entities.AuditEventType
	entityType string
	entityID   int64
	err        error
}

type fakeRecorder struct {
	calls []auditCall
}

func (f *fakeRecorder) Record(eventType entities.AuditEventType, entityType string, entityID int64, _ string, err error) {
	f.calls = append(f.calls, auditCall{eventType: eventType, entityType: entityType, entityID: entityID, err: err})
}

// fakeGameStore returns games in insertion order, which is not id order.
type fakeGameStore struct {
	games     []entities.Game
	nextID    int64
	createErr error
	genresErr error
	genreSets map[int64][]int64
}

func (f *fakeGameStore) FindAll() ([]entities.Game, error) {
	return append([]entities.Game(nil), f.games...), nil
}

func (f *fakeGameStore) FindByID(id int64) (entities.Game, bool, error) {
	for _, g := range f.games {
		if g.ID == id {
			return g, true, nil
		}
	}
	return entities.Game{}, false, nil
}

func (f *fakeGameStore) SearchByTitle(string) ([]entities.Game, error) {
	return f.FindAll()
}

func (f *fakeGameStore) Create(game entities.Game) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.games = append(f.games, game.WithID(f.nextID))
	return f.nextID, nil
}

func (f *fakeGameStore) Update(entities.Game) error { return nil }
func (f *fakeGameStore) Delete(int64) error          { return nil }
func (f *fakeGameStore) AddGenre(int64, int64) error { return nil }

func (f *fakeGameStore) RemoveGenre(int64, int64) error { return nil }

func (f *fakeGameStore) ReplaceGenres(gameID int64, genreIDs []int64) error {
	if f.genresErr != nil {
		return f.genresErr
	}
	if f.genreSets == nil {
		f.genreSets = map[int64][]int64{}
	}
	f.genreSets[gameID] = genreIDs
	return nil
}

type fakeGenreStore struct {
	genres []entities.Genre
	err    error
}

func (f *fakeGenreStore) FindAll() ([]entities.Genre, error) { return f.genres, f.err }
func (f *fakeGenreStore) FindByID(int64) (entities.Genre, bool, error) {
	return entities.Genre{}, false, f.err
}
func (f *fakeGenreStore) FindByGameID(int64) ([]entities.Genre, error) { return f.genres, f.err }
func (f *fakeGenreStore) Create(entities.Genre) (int64, error)        { return 0, f.err }
func (f *fakeGenreStore) Update(entities.Genre) error                 { return f.err }
func (f *fakeGenreStore) Delete(int64) error                          { return f.err }

type fakeReviewStore struct {
	reviews []entities.Review
	avg     datatypes.Null[float64]
}

func (f *fakeReviewStore) FindAll() ([]entities.Review, error) { return f.reviews, nil }
func (f *fakeReviewStore) FindByID(int64) (entities.Review, bool, error) {
	return entities.Review{}, false, nil
}
func (f *fakeReviewStore) FindByGameID(int64) ([]entities.Review, error) { return f.reviews, nil }
func (f *fakeReviewStore) AverageScore(int64) (datatypes.Null[float64], error) {
	return f.avg, nil
}
func (f *fakeReviewStore) Create(entities.Review) (int64, error) { return 1, nil }
func (f *fakeReviewStore) Update(entities.Review) error          { return nil }
func (f *fakeReviewStore) Delete(int64) error                    { return nil }

type fakeRequirementStore struct {
	reqs []entities.SystemRequirement
}

func (f *fakeRequirementStore) FindAll() ([]entities.SystemRequirement, error) { return f.reqs, nil }
func (f *fakeRequirementStore) FindByID(int64) (entities.SystemRequirement, bool, error) {
	return entities.SystemRequirement{}, false, nil
}
func (f *fakeRequirementStore) FindByGameID(int64) ([]entities.SystemRequirement, error) {
	return f.reqs, nil
}
func (f *fakeRequirementStore) Create(entities.SystemRequirement) (int64, error) { return 1, nil }
func (f *fakeRequirementStore) Update(entities.SystemRequirement) error          { return nil }
func (f *fakeRequirementStore) Delete(int64) error                               { return nil }

func newFakeGameService(store *fakeGameStore, genres *fakeGenreStore, reviews *fakeReviewStore, rec AuditRecorder) *GameService {
	return NewGameService(
		store,
		NewGenreService(genres, rec),
		NewReviewService(reviews, rec),
		NewRequirementService(&fakeRequirementStore{}, rec),
		rec,
	)
}
