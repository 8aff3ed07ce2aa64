package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// position records display order; the user_id on payments is deliberately
// not a foreign key because payments may outlive their member.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    position INTEGER NOT NULL,
    user_id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    document_number TEXT NOT NULL,
    birth_date TEXT NOT NULL,
    phone TEXT NOT NULL,
    address TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    position INTEGER NOT NULL,
    payment_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    amount REAL NOT NULL,
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_members_position ON members(position);
CREATE INDEX IF NOT EXISTS idx_payments_position ON payments(position);
CREATE INDEX IF NOT EXISTS idx_payments_user_id ON payments(user_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
