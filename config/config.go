package config

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Everything lives in a process-local SQLite database. The shared-cache DSN
// keeps every pooled connection on the same in-memory store; nothing survives
// a restart.
const defaultDSN = "file::memory:?cache=shared"

// InitDB opens the in-memory store. DATABASE_DSN can point tests at a
// differently named memory database.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
