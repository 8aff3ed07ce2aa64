package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/clubledger/internal/models"
)

// replacePayments deletes every payment row and inserts payments in order.
func replacePayments(ctx context.Context, tx *sql.Tx, payments []models.Payment) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM payments"); err != nil {
		return fmt.Errorf("failed to clear payments: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO payments (position, payment_id, user_id, amount, date) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare payment insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range payments {
		if _, err := stmt.ExecContext(ctx, i, p.PaymentID, p.UserID, p.Amount, p.Date); err != nil {
			return fmt.Errorf("failed to insert payment %s: %w", p.PaymentID, err)
		}
	}

	return nil
}

// listPayments retrieves all payments in display order.
func (s *SQLiteStore) listPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payment_id, user_id, amount, date FROM payments ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.PaymentID, &p.UserID, &p.Amount, &p.Date); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
