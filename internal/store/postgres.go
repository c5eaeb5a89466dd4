package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

// Postgres is the UserStore backed by the users and quiz_attempts tables.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var id int64
	u := &models.User{}
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, xp, streak, last_quiz_date, created_at
		 FROM users WHERE email = LOWER($1)`,
		email,
	).Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &u.XP, &u.Streak, &u.LastQuizDate, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u.QuizHistory, err = p.loadAttempts(ctx, p.db, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Postgres) Create(ctx context.Context, user *models.User) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (email, name, password, xp, streak, last_quiz_date, created_at)
		 VALUES (LOWER($1), $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		user.Email, user.Name, user.PasswordHash, user.XP, user.Streak, user.LastQuizDate, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return models.ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	// Seeded users can arrive with pre-dated history.
	for _, a := range user.QuizHistory {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quiz_attempts (user_id, subject, score, total, percentage, xp_earned, date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, a.Subject, a.Score, a.Total, a.Percentage, a.XPEarned, a.Date,
		)
		if err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}
	}

	return tx.Commit()
}

// Update runs fn against the current record inside a transaction, holding a
// row lock on the user so concurrent updates for the same user serialize.
// Only appended attempts and the mutable scalar fields are written back.
func (p *Postgres) Update(ctx context.Context, email string, fn func(*models.User) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	var id int64
	u := &models.User{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, email, password, xp, streak, last_quiz_date, created_at
		 FROM users WHERE email = LOWER($1) FOR UPDATE`,
		email,
	).Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &u.XP, &u.Streak, &u.LastQuizDate, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("lock user: %w", err)
	}

	u.QuizHistory, err = p.loadAttempts(ctx, tx, id)
	if err != nil {
		return err
	}
	existing := len(u.QuizHistory)

	if err := fn(u); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET xp = $2, streak = $3, last_quiz_date = $4 WHERE id = $1`,
		id, u.XP, u.Streak, u.LastQuizDate,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	for _, a := range u.QuizHistory[existing:] {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quiz_attempts (user_id, subject, score, total, percentage, xp_earned, date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, a.Subject, a.Score, a.Total, a.Percentage, a.XPEarned, a.Date,
		)
		if err != nil {
			return fmt.Errorf("append attempt: %w", err)
		}
	}

	return tx.Commit()
}

// queryer lets loadAttempts run against either the pool or a transaction.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func (p *Postgres) loadAttempts(ctx context.Context, q queryer, userID int64) ([]models.QuizAttempt, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT subject, score, total, percentage, xp_earned, date
		 FROM quiz_attempts WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.Subject, &a.Score, &a.Total, &a.Percentage, &a.XPEarned, &a.Date); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
