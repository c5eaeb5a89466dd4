package cli

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/20238643/UPSC-PrepHub/internal/config"
	"github.com/20238643/UPSC-PrepHub/internal/database"
	"github.com/20238643/UPSC-PrepHub/internal/gamification"
	"github.com/20238643/UPSC-PrepHub/internal/models"
	"github.com/20238643/UPSC-PrepHub/internal/store"
)

// NewSeedCmd loads sample users so the service can be exercised without
// registering by hand. Existing users are wiped first.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample users",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}

			if _, err := db.Exec(`DELETE FROM users`); err != nil {
				return err
			}
			log.Println("[seed] cleared existing users")

			hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			userStore := store.NewPostgres(db)
			ctx := context.Background()
			for _, u := range sampleUsers(string(hashed)) {
				if err := userStore.Create(ctx, u); err != nil {
					return err
				}
				log.Printf("[seed] %s (%s) — %d quiz results", u.Name, u.Email, len(u.QuizHistory))
			}

			log.Println("[seed] done; login with any seeded user, password: password123")
			return nil
		},
	}
}

type seedAttempt struct {
	subject string
	score   int
	total   int
	date    string // YYYY-MM-DD
}

func sampleUsers(passwordHash string) []*models.User {
	seeds := []struct {
		name     string
		email    string
		attempts []seedAttempt
	}{
		{
			name:  "Aarav Sharma",
			email: "aarav@upsc.com",
			attempts: []seedAttempt{
				{"Geography", 16, 20, "2026-02-20"},
				{"History", 14, 20, "2026-02-21"},
				{"Polity", 18, 20, "2026-02-22"},
			},
		},
		{
			name:  "Priya Patel",
			email: "priya@upsc.com",
			attempts: []seedAttempt{
				{"Economics", 12, 20, "2026-02-19"},
				{"Science", 17, 20, "2026-02-23"},
			},
		},
		{
			name:  "Test User",
			email: "testuser@upsc.com",
			attempts: []seedAttempt{
				{"Geography", 10, 20, "2026-02-18"},
				{"Polity", 15, 20, "2026-02-20"},
				{"History", 19, 20, "2026-02-24"},
				{"Economics", 8, 20, "2026-02-25"},
			},
		},
	}

	users := make([]*models.User, 0, len(seeds))
	for _, s := range seeds {
		users = append(users, buildSeedUser(s.name, s.email, passwordHash, s.attempts))
	}
	return users
}

// buildSeedUser replays the attempts through the scoring core so the seeded
// xp, streak and lastQuizDate are consistent with the recorded history.
func buildSeedUser(name, email, passwordHash string, attempts []seedAttempt) *models.User {
	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		QuizHistory:  []models.QuizAttempt{},
		CreatedAt:    time.Now(),
	}

	sorted := make([]seedAttempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].date < sorted[j].date })

	for _, a := range sorted {
		date, err := time.Parse("2006-01-02", a.date)
		if err != nil {
			continue
		}
		percentage := a.score * 100 / a.total
		xpEarned := gamification.XPForQuiz(percentage)

		u.Streak = gamification.UpdateStreak(u.LastQuizDate, u.Streak, date)
		u.XP += xpEarned
		u.QuizHistory = append(u.QuizHistory, models.QuizAttempt{
			Subject:    a.subject,
			Score:      a.score,
			Total:      a.total,
			Percentage: percentage,
			XPEarned:   xpEarned,
			Date:       date,
		})
		quizDate := date
		u.LastQuizDate = &quizDate
	}
	return u
}
