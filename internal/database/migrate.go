package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users (id),
	task TEXT NOT NULL,
	category TEXT DEFAULT 'General',
	notes TEXT,
	status TEXT DEFAULT 'pending',
	date_completed TEXT
);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users (id),
	task TEXT NOT NULL,
	category TEXT DEFAULT 'General',
	notes TEXT,
	status TEXT DEFAULT 'pending',
	date_completed TEXT
);
`

// Migrate creates the schema if it does not exist yet. The DDL differs per
// engine only in how serial primary keys are spelled.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := schemaSQLite
	if db.DriverName() == "postgres" {
		schema = schemaPostgres
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
