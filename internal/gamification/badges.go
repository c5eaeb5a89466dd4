package gamification

import "github.com/20238643/UPSC-PrepHub/internal/models"

// ComputeBadges derives the set of unlocked badges from a user's quiz
// history, total XP and current streak. Each rule is evaluated
// independently and the result order is fixed, so recomputation on
// identical input always yields an identical set.
func ComputeBadges(history []models.QuizAttempt, xp, streak int) []models.Badge {
	totalQuizzes := len(history)

	subjects := make(map[string]bool)
	hasExcellent := false
	hasPerfect := false
	for _, h := range history {
		subjects[h.Subject] = true
		if h.Percentage >= 80 {
			hasExcellent = true
		}
		if h.Percentage == 100 {
			hasPerfect = true
		}
	}

	badges := []models.Badge{}
	if totalQuizzes >= 1 {
		badges = append(badges, models.Badge{ID: "first", Icon: "🎯", Name: "First Quiz", Description: "Completed your first quiz"})
	}
	if totalQuizzes >= 5 {
		badges = append(badges, models.Badge{ID: "quizzer", Icon: "📝", Name: "Quizzer", Description: "5 quizzes completed"})
	}
	if totalQuizzes >= 20 {
		badges = append(badges, models.Badge{ID: "dedicated", Icon: "💪", Name: "Dedicated", Description: "20 quizzes completed"})
	}
	if hasExcellent {
		badges = append(badges, models.Badge{ID: "scholar", Icon: "🏆", Name: "Scholar", Description: "Scored 80%+ in a quiz"})
	}
	if hasPerfect {
		badges = append(badges, models.Badge{ID: "perfect", Icon: "⭐", Name: "Perfect Score", Description: "Scored 100% in a quiz"})
	}
	if len(subjects) >= 3 {
		badges = append(badges, models.Badge{ID: "explorer", Icon: "🌍", Name: "Explorer", Description: "Tried 3+ subjects"})
	}
	if len(subjects) >= 5 {
		badges = append(badges, models.Badge{ID: "allrounder", Icon: "🎓", Name: "All-Rounder", Description: "Tried all 5 subjects"})
	}
	if streak >= 3 {
		badges = append(badges, models.Badge{ID: "streak3", Icon: "🔥", Name: "On Fire", Description: "3-day streak"})
	}
	if streak >= 7 {
		badges = append(badges, models.Badge{ID: "streak7", Icon: "⚡", Name: "Lightning", Description: "7-day streak"})
	}
	if xp >= 1000 {
		badges = append(badges, models.Badge{ID: "xp1k", Icon: "💎", Name: "Diamond Mind", Description: "1000+ XP earned"})
	}
	return badges
}
