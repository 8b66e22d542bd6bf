package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the sqlite3 driver.
)

// MemoryPath opens a private in-memory database. Used by tests.
const MemoryPath = ":memory:"

// InitDB connects to the SQLite database at path and applies pending migrations.
func InitDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		// Ensure the directory for the database file exists.
		// [FIX] G301: Use more restrictive directory permissions as recommended by gosec.
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer. Funnelling every statement through one
	// connection serializes writes inside the process and keeps an in-memory
	// database alive for the lifetime of the pool.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if path != MemoryPath {
		// Enable WAL mode so external readers (sqlite3 shell, backups) don't block us.
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			slog.Warn("Failed to enable WAL mode for SQLite, continuing without it.", "error", err)
		}
	}

	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

// dsn builds the driver connection string. Foreign keys are a per-connection
// pragma in SQLite, so they are requested through the DSN rather than a one-off Exec.
func dsn(path string) string {
	const params = "_foreign_keys=on&_busy_timeout=5000"
	if path == MemoryPath {
		return "file::memory:?" + params
	}
	return fmt.Sprintf("file:%s?%s", path, params)
}
