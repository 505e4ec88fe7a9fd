package services

import (
	"gorm.io/gorm"

	"github.com/mrlokans/gamesreviewer/internal/database/companies"
	"github.com/mrlokans/gamesreviewer/internal/database/games"
	"github.com/mrlokans/gamesreviewer/internal/database/genres"
	"github.com/mrlokans/gamesreviewer/internal/database/lookups"
	"github.com/mrlokans/gamesreviewer/internal/database/outlets"
	"github.com/mrlokans/gamesreviewer/internal/database/requirements"
	"github.com/mrlokans/gamesreviewer/internal/database/reviews"
)

// Catalog groups the services handed to the presentation layer. It is
// assembled once by the composition root.
type Catalog struct {
	Games            *GameService
	Genres           *GenreService
	Companies        *CompanyService
	CompanyTypes     *CompanyTypeService
	MediaOutlets     *MediaOutletService
	Reviews          *ReviewService
	Requirements     *RequirementService
	RequirementTypes *RequirementTypeService
}

// Stores holds one store per entity for NewCatalog.
type Stores struct {
	Games            GameStore
	Genres           GenreStore
	Companies        CompanyStore
	CompanyTypes     CompanyTypeReader
	MediaOutlets     MediaOutletStore
	Reviews          ReviewStore
	Requirements     RequirementStore
	RequirementTypes RequirementTypeReader
}

// NewSQLStores returns the gorm-backed repositories.
func NewSQLStores(db *gorm.DB) Stores {
	return Stores{
		Games:            games.NewRepository(db),
		Genres:           genres.NewRepository(db),
		Companies:        companies.NewRepository(db),
		CompanyTypes:     lookups.NewCompanyTypeRepository(db),
		MediaOutlets:     outlets.NewRepository(db),
		Reviews:          reviews.NewRepository(db),
		Requirements:     requirements.NewRepository(db),
		RequirementTypes: lookups.NewRequirementTypeRepository(db),
	}
}

// NewCatalog builds every service over the given stores. audit may be nil.
func NewCatalog(stores Stores, audit AuditRecorder) *Catalog {
	genreSvc := NewGenreService(stores.Genres, audit)
	reviewSvc := NewReviewService(stores.Reviews, audit)
	requirementSvc := NewRequirementService(stores.Requirements, audit)

	return &Catalog{
		Games:            NewGameService(stores.Games, genreSvc, reviewSvc, requirementSvc, audit),
		Genres:           genreSvc,
		Companies:        NewCompanyService(stores.Companies, audit),
		CompanyTypes:     NewCompanyTypeService(stores.CompanyTypes),
		MediaOutlets:     NewMediaOutletService(stores.MediaOutlets, audit),
		Reviews:          reviewSvc,
		Requirements:     requirementSvc,
		RequirementTypes: NewRequirementTypeService(stores.RequirementTypes),
	}
}
