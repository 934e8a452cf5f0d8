package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"foodtime/internal/model"
)

// Options tunes the connection pool for server-based stores.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        gormLogger.LogLevel
}

// Open returns a connected GORM DB instance. The driver is picked from the URL:
// postgres:// or postgresql:// selects Postgres, mysql:// selects MySQL and
// anything else is treated as a SQLite file path (or ":memory:").
func Open(url string, opts Options) (*gorm.DB, error) {
	dialector, server, err := dialectorFor(url)
	if err != nil {
		return nil, err
	}

	level := opts.LogLevel
	if level == 0 {
		level = gormLogger.Warn
	}
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	if server {
		if opts.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		}
		if opts.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		}
	} else {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func dialectorFor(url string) (gorm.Dialector, bool, error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return nil, false, fmt.Errorf("empty database url")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), true, nil
	case strings.HasPrefix(url, "mysql://"):
		return mysql.Open(strings.TrimPrefix(url, "mysql://")), true, nil
	default:
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), false, nil
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Meal{}, &model.FoodAnalysis{})
}

// Reset drops every table, children first.
func Reset(db *gorm.DB) error {
	return db.Migrator().DropTable(&model.FoodAnalysis{}, &model.Meal{}, &model.User{})
}
