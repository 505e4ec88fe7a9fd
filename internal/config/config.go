package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

type (
	Config struct {
		Database
		Audit
		UI
	}

	Database struct {
		Driver        string // "sqlite" or "postgres"
		Path          string // SQLite file
		URL           string // PostgreSQL connection string
		LogLevel      string // silent, error, warn, info
		MaxOpenConns  int
		SlowThreshold time.Duration
	}
	Audit struct {
		Enabled       bool
		RetentionDays int // Days kept by "audit --prune" when no value is given
	}
	UI struct {
		Color bool
	}
)

// GormLogLevel maps the configured level name onto gorm's logger levels.
// Unknown names fall back to warn.
func (d Database) GormLogLevel() logger.LogLevel {
	switch strings.ToLower(d.LogLevel) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func NewConfig() *Config {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_driver", DefaultDatabaseDriver)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_url", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("database_max_open_conns", 5)
	v.SetDefault("database_slow_threshold", "200ms")
	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention_days", 90)
	v.SetDefault("ui_color", true)

	return &Config{
		Database: Database{
			Driver:        v.GetString("DATABASE_DRIVER"),
			Path:          v.GetString("DATABASE_PATH"),
			URL:           v.GetString("DATABASE_URL"),
			LogLevel:      v.GetString("DATABASE_LOG_LEVEL"),
			MaxOpenConns:  v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			SlowThreshold: v.GetDuration("DATABASE_SLOW_THRESHOLD"),
		},
		Audit: Audit{
			Enabled:       v.GetBool("AUDIT_ENABLED"),
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		UI: UI{
			Color: v.GetBool("UI_COLOR"),
		},
	}
}
