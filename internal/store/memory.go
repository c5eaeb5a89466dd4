package store

import (
	"context"
	"strings"
	"sync"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

// Memory is an in-memory UserStore, used when no database is configured
// and as the store double in tests.
type Memory struct {
	mu    sync.RWMutex
	users map[string]*models.User // keyed by lowercased email
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]*models.User)}
}

func (m *Memory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (m *Memory) Create(ctx context.Context, user *models.User) error {
	key := strings.ToLower(user.Email)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[key]; ok {
		return models.ErrEmailExists
	}
	m.users[key] = copyUser(user)
	return nil
}

func (m *Memory) Update(ctx context.Context, email string, fn func(*models.User) error) error {
	key := strings.ToLower(email)
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[key]
	if !ok {
		return models.ErrUserNotFound
	}

	// fn runs on a copy so a failed update leaves the record untouched.
	updated := copyUser(u)
	if err := fn(updated); err != nil {
		return err
	}
	m.users[key] = updated
	return nil
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.QuizHistory = make([]models.QuizAttempt, len(u.QuizHistory))
	copy(c.QuizHistory, u.QuizHistory)
	if u.LastQuizDate != nil {
		d := *u.LastQuizDate
		c.LastQuizDate = &d
	}
	return &c
}
