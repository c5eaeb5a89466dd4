package gamification

import (
	"context"
	"math"
	"time"

	"github.com/20238643/UPSC-PrepHub/internal/models"
	"github.com/20238643/UPSC-PrepHub/internal/store"
)

// Service orchestrates the scoring core against the user store.
type Service struct {
	store store.UserStore
	now   func() time.Time
}

func NewService(st store.UserStore) *Service {
	return &Service{store: st, now: time.Now}
}

// ── Quiz Result Recorder ────────────────────────────────

// RecordQuizResult scores a submission and updates the user's xp, streak,
// lastQuizDate and history as one atomic store update. The success response
// is only returned once the store update has committed.
func (s *Service) RecordQuizResult(ctx context.Context, req models.SubmitQuizRequest) (*models.QuizResultResponse, error) {
	if req.Email == "" || req.Subject == "" || req.Score == nil || req.Total <= 0 || *req.Score < 0 {
		return nil, models.ErrInvalidSubmission
	}

	percentage := int(math.Round(float64(*req.Score) / float64(req.Total) * 100))
	xpEarned := XPForQuiz(percentage)
	now := s.now()

	var resp *models.QuizResultResponse
	err := s.store.Update(ctx, req.Email, func(u *models.User) error {
		newStreak := UpdateStreak(u.LastQuizDate, u.Streak, now)
		newXP := u.XP + xpEarned
		newLevel := LevelForXP(newXP)

		u.QuizHistory = append(u.QuizHistory, models.QuizAttempt{
			Subject:    req.Subject,
			Score:      *req.Score,
			Total:      req.Total,
			Percentage: percentage,
			XPEarned:   xpEarned,
			Date:       now,
		})
		u.XP = newXP
		u.Streak = newStreak
		quizDate := now
		u.LastQuizDate = &quizDate

		resp = &models.QuizResultResponse{
			Success:      true,
			Message:      "Quiz result saved.",
			XPEarned:     xpEarned,
			TotalXP:      newXP,
			Level:        newLevel,
			Streak:       newStreak,
			Rank:         RankForLevel(newLevel),
			Badges:       ComputeBadges(u.QuizHistory, newXP, newStreak),
			XPForNext:    XPForNextLevel(newLevel),
			XPForCurrent: XPForCurrentLevel(newLevel),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ── Derived Read Views ──────────────────────────────────

func (s *Service) GetStats(ctx context.Context, email string) (*models.StatsResponse, error) {
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	level := LevelForXP(u.XP)
	return &models.StatsResponse{
		Success:       true,
		User:          u.Info(),
		XP:            u.XP,
		Level:         level,
		Streak:        u.Streak,
		Rank:          RankForLevel(level),
		Badges:        ComputeBadges(u.QuizHistory, u.XP, u.Streak),
		SubjectStats:  SubjectStats(u.QuizHistory),
		RecentHistory: RecentHistory(u.QuizHistory, RecentHistoryLimit),
		TotalQuizzes:  len(u.QuizHistory),
		XPForNext:     XPForNextLevel(level),
		XPForCurrent:  XPForCurrentLevel(level),
	}, nil
}

func (s *Service) GetHistory(ctx context.Context, email string) (*models.HistoryResponse, error) {
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	history := u.QuizHistory
	if history == nil {
		history = []models.QuizAttempt{}
	}

	level := LevelForXP(u.XP)
	return &models.HistoryResponse{
		Success:      true,
		User:         u.Info(),
		XP:           u.XP,
		Level:        level,
		Streak:       u.Streak,
		Rank:         RankForLevel(level),
		Badges:       ComputeBadges(u.QuizHistory, u.XP, u.Streak),
		QuizHistory:  history,
		XPForNext:    XPForNextLevel(level),
		XPForCurrent: XPForCurrentLevel(level),
	}, nil
}

// Profile assembles the full derived profile view for a user record.
func Profile(u *models.User) models.ProfileView {
	history := u.QuizHistory
	if history == nil {
		history = []models.QuizAttempt{}
	}

	level := LevelForXP(u.XP)
	return models.ProfileView{
		Name:         u.Name,
		Email:        u.Email,
		XP:           u.XP,
		Level:        level,
		Streak:       u.Streak,
		Rank:         RankForLevel(level),
		Badges:       ComputeBadges(u.QuizHistory, u.XP, u.Streak),
		QuizHistory:  history,
		XPForNext:    XPForNextLevel(level),
		XPForCurrent: XPForCurrentLevel(level),
	}
}
