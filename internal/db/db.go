// Package db owns the nitfix SQLite database connection and schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

var dbInitialized bool

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	nitfixDir := filepath.Join(home, ".nitfix")
	dbPath := filepath.Join(nitfixDir, "nitfix.db")

	// Ensure .nitfix directory exists
	if err := os.MkdirAll(nitfixDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .nitfix directory: %w", err)
	}

	// Open database connection
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run schema setup on first connection (but avoid recursion)
	if !dbInitialized {
		dbInitialized = true
		if err := InitSchema(); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return db, nil
}

// InitSchema applies the authoritative schema to the open connection.
func InitSchema() error {
	if db == nil {
		return fmt.Errorf("database not open")
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nitfix", "nitfix.db"), nil
}
