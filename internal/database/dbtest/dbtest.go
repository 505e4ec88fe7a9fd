// Package dbtest opens throwaway SQLite databases for repository and
// service tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// New returns a migrated and seeded database in the test's temp dir.
// It is closed when the test finishes.
func New(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.NewDatabase(database.Options{
		Driver:   database.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// Insert writes a fixture row directly, bypassing the repositories.
func Insert[T any](t *testing.T, db *gorm.DB, row *T) {
	t.Helper()
	require.NoError(t, db.Create(row).Error)
}

// Game inserts a game with the given title and year and returns its id.
func Game(t *testing.T, db *gorm.DB, title string, year int) int64 {
	t.Helper()
	g := entities.Game{Title: title, ReleaseYear: year}
	Insert(t, db, &g)
	return g.ID
}

// Outlet inserts a media outlet and returns its id.
func Outlet(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	o := entities.MediaOutlet{Name: name}
	Insert(t, db, &o)
	return o.ID
}

// Genre inserts a genre and returns its id.
func Genre(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	g := entities.Genre{Name: name}
	Insert(t, db, &g)
	return g.ID
}

// Company inserts a production company and returns its id.
func Company(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	c := entities.ProductionCompany{Name: name}
	Insert(t, db, &c)
	return c.ID
}

// Review inserts a review with no summary and returns its id.
func Review(t *testing.T, db *gorm.DB, gameID, outletID int64, score int) int64 {
	t.Helper()
	r := entities.Review{GameID: gameID, MediaOutletID: outletID, Score: score, Summary: datatypes.Null[string]{}}
	Insert(t, db, &r)
	return r.ID
}
