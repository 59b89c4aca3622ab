// Package storage provides the marketplace persistence layer.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/wastewise/internal/service"
	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// MemoryPath selects a private in-memory database that disappears with the process.
const MemoryPath = ":memory:"

var _ service.MarketStore = (*SQLiteStorage)(nil)

// SQLiteStorage implements service.MarketStore using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	now    func() time.Time
	dbPath string
}

// NewSQLiteStorage opens a database at dbPath, or an in-memory one for MemoryPath or "".
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	dsn, err := dataSourceName(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}, nil
}

func dataSourceName(dbPath string) (string, error) {
	if dbPath == "" || dbPath == MemoryPath {
		return fmt.Sprintf("file:wastewise-%s?mode=memory&cache=shared&_busy_timeout=5000&_foreign_keys=on", uuid.NewString()), nil
	}

	if err := validateString(dbPath, "dbPath"); err != nil {
		return "", err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}

	return dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Path returns the configured database path.
func (s *SQLiteStorage) Path() string {
	if s.dbPath == "" {
		return MemoryPath
	}
	return s.dbPath
}
