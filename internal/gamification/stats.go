package gamification

import (
	"sort"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

// Subjects is the fixed subject set the dashboard reports on.
var Subjects = []string{"Geography", "History", "Polity", "Economics", "Science"}

// RecentHistoryLimit caps the combined recent-attempts view.
const RecentHistoryLimit = 10

// SubjectStats aggregates per-subject attempt counts, best/latest scores
// and trend direction. Every subject in Subjects gets an entry; subjects
// with no attempts report a zero stat with trend "none".
func SubjectStats(history []models.QuizAttempt) map[string]models.SubjectStat {
	stats := make(map[string]models.SubjectStat, len(Subjects))
	for _, subject := range Subjects {
		var attempts []models.QuizAttempt
		for _, h := range history {
			if h.Subject == subject {
				attempts = append(attempts, h)
			}
		}
		if len(attempts) == 0 {
			stats[subject] = models.SubjectStat{Trend: models.TrendNone}
			continue
		}

		// Stable sort: ties on equal dates keep insertion order.
		sort.SliceStable(attempts, func(i, j int) bool {
			return attempts[i].Date.Before(attempts[j].Date)
		})

		best := 0
		for _, a := range attempts {
			if a.Percentage > best {
				best = a.Percentage
			}
		}

		latest := attempts[len(attempts)-1].Percentage
		prev := latest
		if len(attempts) > 1 {
			prev = attempts[len(attempts)-2].Percentage
		}

		trend := models.TrendSame
		if latest > prev {
			trend = models.TrendUp
		} else if latest < prev {
			trend = models.TrendDown
		}

		stats[subject] = models.SubjectStat{
			Attempts: len(attempts),
			Best:     best,
			Latest:   latest,
			Trend:    trend,
		}
	}
	return stats
}

// RecentHistory returns up to limit attempts across all subjects,
// most recent first.
func RecentHistory(history []models.QuizAttempt, limit int) []models.QuizAttempt {
	recent := make([]models.QuizAttempt, len(history))
	copy(recent, history)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
