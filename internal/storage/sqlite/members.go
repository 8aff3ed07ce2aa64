package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/clubledger/internal/models"
)

// replaceMembers deletes every member row and inserts members in order.
func replaceMembers(ctx context.Context, tx *sql.Tx, members []models.Member) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM members"); err != nil {
		return fmt.Errorf("failed to clear members: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO members (position, user_id, first_name, last_name, document_number, birth_date, phone, address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare member insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range members {
		_, err := stmt.ExecContext(ctx,
			i,
			m.UserID,
			m.FirstName,
			m.LastName,
			m.DocumentNumber,
			m.BirthDate,
			m.Phone,
			m.Address,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member %s: %w", m.UserID, err)
		}
	}

	return nil
}

// listMembers retrieves all members in display order.
func (s *SQLiteStore) listMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, first_name, last_name, document_number, birth_date, phone, address
		FROM members
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.UserID,
			&m.FirstName,
			&m.LastName,
			&m.DocumentNumber,
			&m.BirthDate,
			&m.Phone,
			&m.Address,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
