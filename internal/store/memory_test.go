package store

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

func seedMemory(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory()
	err := m.Create(context.Background(), &models.User{
		Name:  "Aarav Sharma",
		Email: "aarav@upsc.com",
		XP:    150,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return m
}

func TestMemoryGetByEmailCaseInsensitive(t *testing.T) {
	m := seedMemory(t)
	ctx := context.Background()

	for _, email := range []string{"aarav@upsc.com", "AARAV@UPSC.COM", "Aarav@Upsc.Com"} {
		u, err := m.GetByEmail(ctx, email)
		if err != nil {
			t.Errorf("GetByEmail(%q): %v", email, err)
			continue
		}
		if u.Name != "Aarav Sharma" {
			t.Errorf("GetByEmail(%q).Name = %q, want Aarav Sharma", email, u.Name)
		}
	}
}

func TestMemoryGetByEmailNotFound(t *testing.T) {
	m := seedMemory(t)

	_, err := m.GetByEmail(context.Background(), "ghost@upsc.com")
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestMemoryCreateDuplicate(t *testing.T) {
	m := seedMemory(t)

	err := m.Create(context.Background(), &models.User{Name: "Imposter", Email: "AARAV@upsc.com"})
	if !errors.Is(err, models.ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := seedMemory(t)
	ctx := context.Background()

	u, err := m.GetByEmail(ctx, "aarav@upsc.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	u.XP = 999999
	u.QuizHistory = append(u.QuizHistory, models.QuizAttempt{Subject: "Geography"})

	fresh, err := m.GetByEmail(ctx, "aarav@upsc.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if fresh.XP != 150 || len(fresh.QuizHistory) != 0 {
		t.Errorf("stored record mutated through returned copy: xp=%d history=%d", fresh.XP, len(fresh.QuizHistory))
	}
}

func TestMemoryUpdate(t *testing.T) {
	m := seedMemory(t)
	ctx := context.Background()

	err := m.Update(ctx, "Aarav@upsc.com", func(u *models.User) error {
		u.XP += 100
		u.QuizHistory = append(u.QuizHistory, models.QuizAttempt{Subject: "Polity", Score: 8, Total: 10})
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	u, err := m.GetByEmail(ctx, "aarav@upsc.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.XP != 250 || len(u.QuizHistory) != 1 {
		t.Errorf("after update: xp=%d history=%d, want 250/1", u.XP, len(u.QuizHistory))
	}
}

func TestMemoryUpdateFailureLeavesRecordUntouched(t *testing.T) {
	m := seedMemory(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := m.Update(ctx, "aarav@upsc.com", func(u *models.User) error {
		u.XP = 0
		u.Name = "Clobbered"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	u, err := m.GetByEmail(ctx, "aarav@upsc.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.XP != 150 || u.Name != "Aarav Sharma" {
		t.Errorf("record changed despite failed update: xp=%d name=%q", u.XP, u.Name)
	}
}

func TestMemoryUpdateUnknownUser(t *testing.T) {
	m := seedMemory(t)

	err := m.Update(context.Background(), "ghost@upsc.com", func(u *models.User) error { return nil })
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestMemoryConcurrentUpdates(t *testing.T) {
	m := seedMemory(t)
	ctx := context.Background()

	const n = 50
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return m.Update(ctx, "aarav@upsc.com", func(u *models.User) error {
				u.XP += 10
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent update: %v", err)
	}

	u, err := m.GetByEmail(ctx, "aarav@upsc.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.XP != 150+n*10 {
		t.Errorf("xp = %d, want %d (no lost updates)", u.XP, 150+n*10)
	}
}
