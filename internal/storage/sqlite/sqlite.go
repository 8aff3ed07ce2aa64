// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/clubledger/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// foreign_keys stays off: payments.user_id is not a reference, and a
	// payment may outlive its member when cascade delete is disabled.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads both tables in display order. A database that has never been
// saved to yields ErrNotFound with an empty snapshot.
func (s *SQLiteStore) Load(ctx context.Context) (*storage.Snapshot, error) {
	saved, err := s.hasSaved(ctx)
	if err != nil {
		return nil, err
	}
	if !saved {
		return &storage.Snapshot{}, storage.ErrNotFound
	}

	members, err := s.listMembers(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.listPayments(ctx)
	if err != nil {
		return nil, err
	}

	return &storage.Snapshot{Members: members, Payments: payments}, nil
}

// Save replaces the contents of both tables in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, snap *storage.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := replaceMembers(ctx, tx, snap.Members); err != nil {
		return err
	}
	if err := replacePayments(ctx, tx, snap.Payments); err != nil {
		return err
	}
	if err := markSaved(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// hasSaved reports whether Save has ever completed on this database.
func (s *SQLiteStore) hasSaved(ctx context.Context) (bool, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return false, fmt.Errorf("failed to read user_version: %w", err)
	}
	return version > 0, nil
}

// markSaved flags the database as holding saved tables.
func markSaved(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "PRAGMA user_version = 1"); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
