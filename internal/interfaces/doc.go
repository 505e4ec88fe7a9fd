// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
// Defined in internal/services/interfaces.go and implemented by the
// repositories under internal/database/:
//
//   - GameStore: games and their genre links (database/games)
//   - GenreStore: genres (database/genres)
//   - CompanyStore: production companies (database/companies)
//   - MediaOutletStore: review outlets (database/outlets)
//   - ReviewStore: reviews and score averages (database/reviews)
//   - RequirementStore: per-tier hardware profiles (database/requirements)
//   - CompanyTypeReader, RequirementTypeReader: seeded lookups (database/lookups)
//
// ## Audit
//
//   - AuditRecorder: receives one call per catalog mutation (internal/audit)
//
// # Adding a New Catalog Entity
//
//  1. Add the entity with a constructor that validates to internal/entities/
//
//  2. Add the table to both files in internal/database/schema/
//
//  3. Create sub-package internal/database/<entity>/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  4. Declare the store interface in internal/services/interfaces.go and
//     wrap it in a service that records audit events
//
//  5. Add the store to services.Stores and the service to services.Catalog
//
//  6. Add compile-time check:
//
//     var _ services.PlatformStore = (*platforms.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
