package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"train-booking/config"
	"train-booking/logger"
)

// DB holds accounts and assistant conversation history. Tests swap it for a sqlmock handle.
var DB *sql.DB

var (
	connectAttempts = 30
	retryDelay      = 2 * time.Second
)

// DSN builds the lib/pq connection string for cfg
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
}

// Connect opens the postgres pool and waits until the server answers
func Connect(ctx context.Context, cfg *config.Config) error {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := waitForDB(ctx, db); err != nil {
		db.Close()
		return err
	}

	logger.GetLogger().Infow("Connected to database", "host", cfg.DBHost, "db", cfg.DBName)
	DB = db
	return nil
}

func waitForDB(ctx context.Context, db *sql.DB) error {
	log := logger.GetLogger()
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		log.Warnw("Database not ready", "attempt", attempt, "max", connectAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
}

func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// GetDB returns the shared handle
func GetDB() *sql.DB {
	return DB
}
