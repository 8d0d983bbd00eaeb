package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DBClient wraps the embedded SQLite database file that holds all
// content and analytics tables.
type DBClient struct {
	DB *sql.DB
}

// DefaultPath is the database filename used when PORTFOLIO_DB_PATH is not set.
const DefaultPath = "portfolio.db"

// ResolvePath returns the database file path, honoring the PORTFOLIO_DB_PATH
// environment variable override.
func ResolvePath() string {
	if p := os.Getenv("PORTFOLIO_DB_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

func NewSQLiteDB(path string) (*DBClient, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database file: %w", err)
	}

	// SQLite serializes writes at the file level; a single connection avoids
	// SQLITE_BUSY churn between concurrent request handlers.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("error executing %q: %w", pragma, err)
		}
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database (ping failed): %w", err)
	}

	zap.S().Infof("Successfully opened SQLite database at %s", path)
	return &DBClient{DB: db}, nil
}

func (c *DBClient) Close() {
	if c.DB != nil {
		err := c.DB.Close()
		if err != nil {
			zap.S().Errorf("Error closing database connection: %v", err)
		} else {
			zap.S().Info("SQLite database connection closed.")
		}
	}
}
