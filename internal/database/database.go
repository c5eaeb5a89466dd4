package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres pool. An empty dsn falls back to the
// DATABASE_URL environment variable.
func Connect(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return nil, fmt.Errorf("no database url configured")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Migrate creates the schema. Statements are idempotent so it is safe to run
// on every startup.
func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id             BIGSERIAL PRIMARY KEY,
		email          VARCHAR(255) UNIQUE NOT NULL,
		name           VARCHAR(255) NOT NULL,
		password       VARCHAR(255) NOT NULL,
		xp             BIGINT NOT NULL DEFAULT 0,
		streak         INT NOT NULL DEFAULT 0,
		last_quiz_date TIMESTAMP WITH TIME ZONE,
		created_at     TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject    VARCHAR(100) NOT NULL,
		score      INT NOT NULL,
		total      INT NOT NULL CHECK (total > 0),
		percentage INT NOT NULL CHECK (percentage >= 0),
		xp_earned  INT NOT NULL DEFAULT 0,
		date       TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_user ON quiz_attempts(user_id);
	CREATE INDEX IF NOT EXISTS idx_attempts_user_date ON quiz_attempts(user_id, date DESC);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
