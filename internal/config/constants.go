package config

const (
	// DefaultDatabaseDriver is used when DATABASE_DRIVER is unset
	DefaultDatabaseDriver = "sqlite"

	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./gamesreviewer.db"
)
