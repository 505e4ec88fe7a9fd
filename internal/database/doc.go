// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, DDL, lookup seeding
//	├── errors.go        # Constraint errors mapped from SQLite and PostgreSQL
//	├── schema/          # Embedded DDL, one file per driver
//	├── games/           # Games and their genre links
//	├── genres/          # Genre CRUD
//	├── companies/       # Production company CRUD
//	├── lookups/         # Read-only company types and requirement tiers
//	├── outlets/         # Media outlet CRUD
//	├── reviews/         # Reviews and average scores
//	├── requirements/    # Per-tier system requirements
//	├── audit/           # Mutation trail
//	└── dbtest/          # Throwaway SQLite databases for tests
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(database.Options{
//		Driver: database.DriverSQLite,
//		Path:   "./gamesreviewer.db",
//	})
//
//	gamesRepo := games.NewRepository(db.DB)
//	game, found, err := gamesRepo.FindByID(3)
//
// A missing row is reported through the found flag, never as an error.
// Unique and foreign key violations come back as *DuplicateEntryError and
// *ForeignKeyViolationError; use errors.Is with ErrDuplicateEntry and
// ErrForeignKeyViolation to test for them.
//
// # Interface Implementations
//
// Each repository satisfies one store interface of the services package,
// checked at compile time in internal/interfaces.
//
// # Adding a New Domain
//
//  1. Add the table to schema/sqlite.sql and schema/postgres.sql
//  2. Create a new sub-package: internal/database/<domain>/
//  3. Define a Repository struct with a *gorm.DB field
//  4. Add NewRepository(db *gorm.DB) constructor
//  5. Wrap driver errors with database.Classify
//  6. Add a compile-time check in internal/interfaces
package database
