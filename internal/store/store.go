package store

import (
	"context"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

// UserStore is the persistence boundary for user records. Email lookups are
// case-insensitive. Update applies fn to the current record and persists the
// result as one atomic unit, so two concurrent submissions for the same user
// cannot miscompute from a stale read or drop an attempt.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, email string, fn func(*models.User) error) error
}
