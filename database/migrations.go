package database

import (
	"database/sql"
	"fmt"

	"train-booking/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS conversation_history (
		id SERIAL PRIMARY KEY,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		message TEXT NOT NULL,
		route TEXT NOT NULL DEFAULT '',
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conversation_session
		ON conversation_history (session_id, timestamp DESC)`,
}

// RunMigrations ensures all required tables exist
func RunMigrations(db *sql.DB) error {
	log := logger.GetLogger()
	log.Info("Checking database schema...")

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Infow("Database schema is up to date", "statements", len(schema))
	return nil
}
