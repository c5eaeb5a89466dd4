package gamification

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/20238643/UPSC-PrepHub/internal/models"
	"github.com/20238643/UPSC-PrepHub/internal/store"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	err := mem.Create(context.Background(), &models.User{
		Name:        "Test User",
		Email:       "testuser@upsc.com",
		QuizHistory: []models.QuizAttempt{},
		CreatedAt:   testNow,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := NewService(mem)
	svc.now = func() time.Time { return testNow }
	return svc, mem
}

func intPtr(v int) *int { return &v }

func TestRecordQuizResultFirstQuiz(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.RecordQuizResult(context.Background(), models.SubmitQuizRequest{
		Email:   "testuser@upsc.com",
		Subject: "Geography",
		Score:   intPtr(16),
		Total:   20,
	})
	if err != nil {
		t.Fatalf("RecordQuizResult: %v", err)
	}

	if resp.XPEarned != 100 {
		t.Errorf("xpEarned = %d, want 100 (80%% band)", resp.XPEarned)
	}
	if resp.TotalXP != 100 {
		t.Errorf("totalXP = %d, want 100", resp.TotalXP)
	}
	if resp.Level != 1 {
		t.Errorf("level = %d, want 1 (100 < 200)", resp.Level)
	}
	if resp.Streak != 1 {
		t.Errorf("streak = %d, want 1", resp.Streak)
	}
	if resp.Rank.Name != "Bronze" {
		t.Errorf("rank = %s, want Bronze", resp.Rank.Name)
	}
	if resp.XPForNext != 200 || resp.XPForCurrent != 0 {
		t.Errorf("progress bounds = (%d, %d), want (200, 0)", resp.XPForNext, resp.XPForCurrent)
	}

	got := badgeIDs(resp.Badges)
	hasFirst, hasScholar := false, false
	for _, id := range got {
		if id == "first" {
			hasFirst = true
		}
		if id == "scholar" {
			hasScholar = true
		}
	}
	if !hasFirst || !hasScholar {
		t.Errorf("badges = %v, want first and scholar present", got)
	}
}

func TestRecordQuizResultRounding(t *testing.T) {
	svc, _ := newTestService(t)

	// 1/3 rounds to 33% → lowest band
	resp, err := svc.RecordQuizResult(context.Background(), models.SubmitQuizRequest{
		Email: "testuser@upsc.com", Subject: "History", Score: intPtr(1), Total: 3,
	})
	if err != nil {
		t.Fatalf("RecordQuizResult: %v", err)
	}
	if resp.XPEarned != 20 {
		t.Errorf("1/3 xpEarned = %d, want 20", resp.XPEarned)
	}

	// 2/3 rounds to 67% → 70 XP band
	resp, err = svc.RecordQuizResult(context.Background(), models.SubmitQuizRequest{
		Email: "testuser@upsc.com", Subject: "History", Score: intPtr(2), Total: 3,
	})
	if err != nil {
		t.Fatalf("RecordQuizResult: %v", err)
	}
	if resp.XPEarned != 70 {
		t.Errorf("2/3 xpEarned = %d, want 70", resp.XPEarned)
	}
}

func TestRecordQuizResultLevelUp(t *testing.T) {
	svc, mem := newTestService(t)

	// Lift the user to just below the level 2 threshold.
	err := mem.Update(context.Background(), "testuser@upsc.com", func(u *models.User) error {
		u.XP = 150
		return nil
	})
	if err != nil {
		t.Fatalf("prime xp: %v", err)
	}

	resp, err := svc.RecordQuizResult(context.Background(), models.SubmitQuizRequest{
		Email: "testuser@upsc.com", Subject: "Polity", Score: intPtr(18), Total: 20,
	})
	if err != nil {
		t.Fatalf("RecordQuizResult: %v", err)
	}
	if resp.TotalXP != 250 || resp.Level != 2 {
		t.Errorf("totalXP/level = %d/%d, want 250/2", resp.TotalXP, resp.Level)
	}
	if resp.XPForNext != 500 || resp.XPForCurrent != 200 {
		t.Errorf("progress bounds = (%d, %d), want (500, 200)", resp.XPForNext, resp.XPForCurrent)
	}
}

func TestRecordQuizResultValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  models.SubmitQuizRequest
	}{
		{"missing email", models.SubmitQuizRequest{Subject: "Geography", Score: intPtr(5), Total: 20}},
		{"missing subject", models.SubmitQuizRequest{Email: "testuser@upsc.com", Score: intPtr(5), Total: 20}},
		{"missing score", models.SubmitQuizRequest{Email: "testuser@upsc.com", Subject: "Geography", Total: 20}},
		{"zero total", models.SubmitQuizRequest{Email: "testuser@upsc.com", Subject: "Geography", Score: intPtr(5)}},
		{"negative total", models.SubmitQuizRequest{Email: "testuser@upsc.com", Subject: "Geography", Score: intPtr(5), Total: -1}},
		{"negative score", models.SubmitQuizRequest{Email: "testuser@upsc.com", Subject: "Geography", Score: intPtr(-1), Total: 20}},
	}

	for _, tt := range tests {
		_, err := svc.RecordQuizResult(context.Background(), tt.req)
		if !errors.Is(err, models.ErrInvalidSubmission) {
			t.Errorf("%s: err = %v, want ErrInvalidSubmission", tt.name, err)
		}
	}
}

func TestRecordQuizResultUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordQuizResult(context.Background(), models.SubmitQuizRequest{
		Email: "nobody@upsc.com", Subject: "Geography", Score: intPtr(5), Total: 20,
	})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestRecordQuizResultStreakProgression(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	submit := func() *models.QuizResultResponse {
		t.Helper()
		resp, err := svc.RecordQuizResult(ctx, models.SubmitQuizRequest{
			Email: "testuser@upsc.com", Subject: "Science", Score: intPtr(10), Total: 20,
		})
		if err != nil {
			t.Fatalf("RecordQuizResult: %v", err)
		}
		return resp
	}

	if got := submit().Streak; got != 1 {
		t.Errorf("day 1 streak = %d, want 1", got)
	}
	// Same day again: unchanged.
	if got := submit().Streak; got != 1 {
		t.Errorf("same-day streak = %d, want 1", got)
	}
	// Next day: increments.
	svc.now = func() time.Time { return testNow.Add(24 * time.Hour) }
	if got := submit().Streak; got != 2 {
		t.Errorf("day 2 streak = %d, want 2", got)
	}
	// Skip a day: resets.
	svc.now = func() time.Time { return testNow.Add(4 * 24 * time.Hour) }
	if got := submit().Streak; got != 1 {
		t.Errorf("broken streak = %d, want 1", got)
	}
}

func TestSubmitThenStatsRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.RecordQuizResult(ctx, models.SubmitQuizRequest{
		Email: "testuser@upsc.com", Subject: "Geography", Score: intPtr(16), Total: 20,
	})
	if err != nil {
		t.Fatalf("RecordQuizResult: %v", err)
	}

	stats, err := svc.GetStats(ctx, "testuser@upsc.com")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.XP != resp.TotalXP {
		t.Errorf("stats xp = %d, want %d", stats.XP, resp.TotalXP)
	}
	if stats.Level != resp.Level || stats.Streak != resp.Streak {
		t.Errorf("stats level/streak = %d/%d, want %d/%d", stats.Level, stats.Streak, resp.Level, resp.Streak)
	}
	if stats.TotalQuizzes != 1 {
		t.Errorf("totalQuizzes = %d, want 1", stats.TotalQuizzes)
	}
	if len(stats.RecentHistory) != 1 || stats.RecentHistory[0].Subject != "Geography" {
		t.Errorf("recentHistory = %+v, want the new Geography attempt", stats.RecentHistory)
	}

	geo := stats.SubjectStats["Geography"]
	if geo.Attempts != 1 || geo.Best != 80 || geo.Latest != 80 || geo.Trend != models.TrendSame {
		t.Errorf("Geography stat = %+v, want attempts 1 best 80 latest 80 trend same", geo)
	}
}

func TestGetHistoryEmptyUser(t *testing.T) {
	svc, _ := newTestService(t)

	hist, err := svc.GetHistory(context.Background(), "testuser@upsc.com")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if hist.QuizHistory == nil {
		t.Error("quizHistory must be a non-nil slice for JSON encoding")
	}
	if hist.Level != 1 || hist.Rank.Name != "Bronze" {
		t.Errorf("fresh user level/rank = %d/%s, want 1/Bronze", hist.Level, hist.Rank.Name)
	}
	if hist.XPForNext != 200 || hist.XPForCurrent != 0 {
		t.Errorf("progress bounds = (%d, %d), want (200, 0)", hist.XPForNext, hist.XPForCurrent)
	}
}

func TestConcurrentSubmissionsSameUser(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	const n = 16
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.RecordQuizResult(ctx, models.SubmitQuizRequest{
				Email: "testuser@upsc.com", Subject: "Geography", Score: intPtr(16), Total: 20,
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent submit: %v", err)
	}

	u, err := mem.GetByEmail(ctx, "testuser@upsc.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if len(u.QuizHistory) != n {
		t.Errorf("recorded attempts = %d, want %d", len(u.QuizHistory), n)
	}
	if u.XP != n*100 {
		t.Errorf("xp = %d, want %d (no lost updates)", u.XP, n*100)
	}
}
