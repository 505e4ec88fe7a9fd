package services

import (
	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// GameStore persists games and their genre links.
type GameStore interface {
	FindAll() ([]entities.Game, error)
	FindByID(id int64) (entities.Game, bool, error)
	SearchByTitle(query string) ([]entities.Game, error)
	Create(game entities.Game) (int64, error)
	Update(game entities.Game) error
	Delete(id int64) error
	AddGenre(gameID, genreID int64) error
	RemoveGenre(gameID, genreID int64) error
	ReplaceGenres(gameID int64, genreIDs []int64) error
}

// GenreStore persists genres.
type GenreStore interface {
	FindAll() ([]entities.Genre, error)
	FindByID(id int64) (entities.Genre, bool, error)
	FindByGameID(gameID int64) ([]entities.Genre, error)
	Create(genre entities.Genre) (int64, error)
	Update(genre entities.Genre) error
	Delete(id int64) error
}

// CompanyStore persists production companies.
type CompanyStore interface {
	FindAll() ([]entities.ProductionCompany, error)
	FindByID(id int64) (entities.ProductionCompany, bool, error)
	Create(company entities.ProductionCompany) (int64, error)
	Update(company entities.ProductionCompany) error
	Delete(id int64) error
}

// CompanyTypeReader gives read-only access to company types.
type CompanyTypeReader interface {
	FindAll() ([]entities.CompanyType, error)
	FindByID(id int64) (entities.CompanyType, bool, error)
}

// MediaOutletStore persists media outlets.
type MediaOutletStore interface {
	FindAll() ([]entities.MediaOutlet, error)
	FindByID(id int64) (entities.MediaOutlet, bool, error)
	Create(outlet entities.MediaOutlet) (int64, error)
	Update(outlet entities.MediaOutlet) error
	Delete(id int64) error
}

// ReviewStore persists reviews and computes score averages.
type ReviewStore interface {
	FindAll() ([]entities.Review, error)
	FindByID(id int64) (entities.Review, bool, error)
	FindByGameID(gameID int64) ([]entities.Review, error)
	AverageScore(gameID int64) (datatypes.Null[float64], error)
	Create(review entities.Review) (int64, error)
	Update(review entities.Review) error
	Delete(id int64) error
}

// RequirementStore persists system requirement profiles.
type RequirementStore interface {
	FindAll() ([]entities.SystemRequirement, error)
	FindByID(id int64) (entities.SystemRequirement, bool, error)
	FindByGameID(gameID int64) ([]entities.SystemRequirement, error)
	Create(req entities.SystemRequirement) (int64, error)
	Update(req entities.SystemRequirement) error
	Delete(id int64) error
}

// RequirementTypeReader gives read-only access to requirement tiers.
type RequirementTypeReader interface {
	FindAll() ([]entities.SystemRequirementType, error)
	FindByID(id int64) (entities.SystemRequirementType, bool, error)
}

// AuditRecorder receives the outcome of every mutation. It must not fail
// the caller.
type AuditRecorder interface {
	Record(eventType entities.AuditEventType, entityType string, entityID int64, description string, err error)
}
