// Package csvfile provides a storage.Store backed by two CSV files with
// header rows, one per table.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/mmynk/clubledger/internal/models"
	"github.com/mmynk/clubledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using CSV files.
type Store struct {
	membersPath  string
	paymentsPath string
}

// New creates a Store reading and writing the given files.
func New(membersPath, paymentsPath string) *Store {
	return &Store{membersPath: membersPath, paymentsPath: paymentsPath}
}

// Close is a no-op; files are opened per call.
func (s *Store) Close() error {
	return nil
}

// Load reads both files. A missing file yields empty tables for both.
func (s *Store) Load(ctx context.Context) (*storage.Snapshot, error) {
	memberRows, err := readTable(s.membersPath, models.MemberColumns)
	if errors.Is(err, fs.ErrNotExist) {
		return &storage.Snapshot{}, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read members: %w", err)
	}

	paymentRows, err := readTable(s.paymentsPath, models.PaymentColumns)
	if errors.Is(err, fs.ErrNotExist) {
		return &storage.Snapshot{}, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payments: %w", err)
	}

	snap := &storage.Snapshot{}
	for i, rec := range memberRows {
		m, ok := models.MemberFromFields(rec)
		if !ok {
			return nil, fmt.Errorf("unexpected field count on members line %d: %d", i+2, len(rec))
		}
		snap.Members = append(snap.Members, m)
	}
	for i, rec := range paymentRows {
		amount, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount on payments line %d: %w", i+2, err)
		}
		snap.Payments = append(snap.Payments, models.Payment{
			PaymentID: rec[0],
			UserID:    rec[1],
			Amount:    amount,
			Date:      rec[3],
		})
	}

	return snap, nil
}

// Save overwrites both files with the snapshot contents.
func (s *Store) Save(ctx context.Context, snap *storage.Snapshot) error {
	memberRows := make([][]string, 0, len(snap.Members))
	for _, m := range snap.Members {
		memberRows = append(memberRows, m.Fields())
	}
	if err := writeTable(s.membersPath, models.MemberColumns, memberRows); err != nil {
		return fmt.Errorf("failed to write members: %w", err)
	}

	paymentRows := make([][]string, 0, len(snap.Payments))
	for _, p := range snap.Payments {
		paymentRows = append(paymentRows, []string{
			p.PaymentID,
			p.UserID,
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			p.Date,
		})
	}
	if err := writeTable(s.paymentsPath, models.PaymentColumns, paymentRows); err != nil {
		return fmt.Errorf("failed to write payments: %w", err)
	}

	return nil
}

// readTable reads a CSV file and checks its header against columns.
func readTable(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !slices.Equal(header, columns) {
		return nil, fmt.Errorf("unexpected header in %s: %v", path, header)
	}

	return r.ReadAll()
}

// writeTable overwrites path with a header row followed by rows.
func writeTable(path string, columns []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
