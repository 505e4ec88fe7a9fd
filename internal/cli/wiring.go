package cli

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/gamesreviewer/internal/audit"
	"github.com/mrlokans/gamesreviewer/internal/config"
	"github.com/mrlokans/gamesreviewer/internal/database"
	auditrepo "github.com/mrlokans/gamesreviewer/internal/database/audit"
	"github.com/mrlokans/gamesreviewer/internal/services"
)

// app is the composition root shared by the commands: database, then
// repositories, then services.
type app struct {
	cfg     *config.Config
	db      *database.Database
	audit   *audit.Service
	catalog *services.Catalog
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg := config.NewConfig()
	applyFlags(cmd, cfg)

	opts := database.Options{
		Driver:        database.Driver(cfg.Database.Driver),
		Path:          cfg.Database.Path,
		DSN:           cfg.Database.URL,
		LogLevel:      cfg.Database.GormLogLevel(),
		SlowThreshold: cfg.Database.SlowThreshold,
		MaxOpenConns:  cfg.Database.MaxOpenConns,
	}
	if verbose {
		opts.LogLevel = logger.Info
	}

	db, err := database.NewDatabase(opts)
	if err != nil {
		return nil, err
	}

	auditService := audit.NewService(auditrepo.NewRepository(db.DB))
	var recorder services.AuditRecorder
	if cfg.Audit.Enabled {
		recorder = auditService
	}

	return &app{
		cfg:     cfg,
		db:      db,
		audit:   auditService,
		catalog: services.NewCatalog(services.NewSQLStores(db.DB), recorder),
	}, nil
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Database.Driver = driver
	}
	if flags.Changed("db") {
		cfg.Database.Path = dbPath
	}
	if flags.Changed("dsn") {
		cfg.Database.URL = dsn
		if !flags.Changed("driver") {
			cfg.Database.Driver = string(database.DriverPostgres)
		}
	}
}

func (a *app) Close() error {
	return a.db.Close()
}
