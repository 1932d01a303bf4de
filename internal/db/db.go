package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"employees-api/internal/config"
	"employees-api/internal/models"
)

// Connect opens the configured store. Postgres is used when a database URL is
// set, otherwise a SQLite file at the configured path.
func Connect(cfg config.Config, out *log.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		out,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(cfg.DBLogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	if cfg.UsesPostgres() {
		database, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open postgres db: %w", err)
		}
		return database, nil
	}

	sqlDB, err := OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, gormConfig)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm sqlite: %w", err)
	}
	return database, nil
}

// OpenSQLite opens a single-connection handle on the pure Go SQLite driver
// registered by github.com/glebarez/sqlite.
func OpenSQLite(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One shared handle for the whole process; also keeps :memory: databases coherent.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return sqlDB, nil
}

// EnsureSchema creates the employees table when it is missing. Existing tables
// are left untouched.
func EnsureSchema(ctx context.Context, database *gorm.DB) error {
	migrator := database.WithContext(ctx).Migrator()
	if migrator.HasTable(&models.Employee{}) {
		return nil
	}
	if err := migrator.CreateTable(&models.Employee{}); err != nil {
		return fmt.Errorf("create employees table: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
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
