package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/gamesreviewer/internal/audit"
	"github.com/mrlokans/gamesreviewer/internal/database/companies"
	"github.com/mrlokans/gamesreviewer/internal/database/games"
	"github.com/mrlokans/gamesreviewer/internal/database/genres"
	"github.com/mrlokans/gamesreviewer/internal/database/lookups"
	"github.com/mrlokans/gamesreviewer/internal/database/outlets"
	"github.com/mrlokans/gamesreviewer/internal/database/requirements"
	"github.com/mrlokans/gamesreviewer/internal/database/reviews"
	"github.com/mrlokans/gamesreviewer/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.GameStore = (*games.Repository)(nil)
var _ services.GenreStore = (*genres.Repository)(nil)
var _ services.CompanyStore = (*companies.Repository)(nil)
var _ services.MediaOutletStore = (*outlets.Repository)(nil)
var _ services.ReviewStore = (*reviews.Repository)(nil)
var _ services.RequirementStore = (*requirements.Repository)(nil)

// Lookup tables are read-only
var _ services.CompanyTypeReader = (*lookups.CompanyTypeRepository)(nil)
var _ services.RequirementTypeReader = (*lookups.RequirementTypeRepository)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

var _ services.AuditRecorder = (*audit.Service)(nil)
