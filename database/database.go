package database

import (
	"fmt"
	"log"
	"strings"

	"cafeadmin/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlitePrefix selects the sqlite driver, e.g. "sqlite:console.db".
const sqlitePrefix = "sqlite:"

// Open connects to the activity database and migrates it. A DSN starting with
// "sqlite:" opens a sqlite file; anything else is a postgres DSN.
func Open(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		dialector = sqlite.Open(path)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.AutoMigrate(&model.Activity{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Println("Database connected and migrated")
	return db, nil
}
