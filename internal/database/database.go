package database

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var defaultCompanyTypes = []entities.CompanyType{
	{Name: "Developer"},
	{Name: "Publisher"},
	{Name: "Developer & Publisher"},
}

var defaultRequirementTypes = []entities.SystemRequirementType{
	{Name: "Low"},
	{Name: "Medium"},
	{Name: "High"},
}

// Options selects and tunes the connection.
type Options struct {
	Driver        Driver
	Path          string // SQLite file
	DSN           string // PostgreSQL connection string
	LogLevel      logger.LogLevel
	SlowThreshold time.Duration
	MaxOpenConns  int
}

type Database struct {
	DB     *gorm.DB
	Driver Driver
}

// NewDatabase opens the configured database, creates missing tables and
// seeds the lookup tables.
func NewDatabase(opts Options) (*Database, error) {
	dialector, err := openDialector(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, Driver: driverOrDefault(opts.Driver)}

	if opts.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxOpenConns)
	}

	if err := database.applySchema(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := db.AutoMigrate(&entities.AuditEvent{}); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := database.seedLookups(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to seed lookup tables: %w", err)
	}

	log.Printf("Database initialized successfully (%s)", database.Driver)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func driverOrDefault(driver Driver) Driver {
	if driver == "" {
		return DriverSQLite
	}
	return driver
}

func openDialector(opts Options) (gorm.Dialector, error) {
	switch driverOrDefault(opts.Driver) {
	case DriverSQLite:
		if opts.Path == "" {
			return nil, errors.New("sqlite driver requires a database path")
		}
		return sqlite.Open(sqliteDSN(opts.Path)), nil
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, errors.New("postgres driver requires a connection string")
		}
		return postgres.Open(opts.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", opts.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func newLogger(opts Options) logger.Interface {
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	slow := opts.SlowThreshold
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             slow,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// SchemaStatements returns the DDL for the driver, one statement per entry.
func SchemaStatements(driver Driver) ([]string, error) {
	raw, err := schemaFS.ReadFile("schema/" + string(driverOrDefault(driver)) + ".sql")
	if err != nil {
		return nil, fmt.Errorf("no schema for driver %s: %w", driver, err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(raw), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}

func (d *Database) applySchema() error {
	statements, err := SchemaStatements(d.Driver)
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if err := d.DB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) seedLookups() error {
	for _, ct := range defaultCompanyTypes {
		var existing entities.CompanyType
		result := d.DB.Where("name = ?", ct.Name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&ct).Error; err != nil {
				return fmt.Errorf("failed to create company type %s: %w", ct.Name, err)
			}
			log.Printf("Created company type: %s", ct.Name)
		} else if result.Error != nil {
			return result.Error
		}
	}

	for _, rt := range defaultRequirementTypes {
		var existing entities.SystemRequirementType
		result := d.DB.Where("name = ?", rt.Name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&rt).Error; err != nil {
				return fmt.Errorf("failed to create requirement type %s: %w", rt.Name, err)
			}
			log.Printf("Created requirement type: %s", rt.Name)
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
