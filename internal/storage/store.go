// Package storage provides abstractions for persisting the ledger tables.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/clubledger/internal/models"
)

// ErrNotFound is returned by Load when no saved tables exist. The snapshot
// returned alongside it is empty and usable.
var ErrNotFound = errors.New("no saved tables found")

// Snapshot holds the full contents of both tables in display order.
type Snapshot struct {
	Members  []models.Member
	Payments []models.Payment
}

// Store defines the interface for loading and saving the ledger tables.
// This abstraction allows swapping storage backends (CSV files, SQLite)
// without changing the menu layer.
type Store interface {
	// Load reads both tables. If either table is missing, it returns an
	// empty snapshot for both together with ErrNotFound.
	Load(ctx context.Context) (*Snapshot, error)

	// Save overwrites both tables with the snapshot contents.
	Save(ctx context.Context, snap *Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}
