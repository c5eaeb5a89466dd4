package gamification

import (
	"math"
	"time"
)

// UpdateStreak returns the daily streak after an activity at now.
// The day count is floor of elapsed wall-clock time in days, not calendar
// boundaries: a quiz 23h after the last one is still "same day".
// Branch order matters — anything other than exactly 0 or 1 elapsed days,
// including a negative diff from backdated data, resets the streak.
func UpdateStreak(lastQuizDate *time.Time, currentStreak int, now time.Time) int {
	if lastQuizDate == nil {
		return 1
	}
	diffDays := int(math.Floor(now.Sub(*lastQuizDate).Hours() / 24))
	if diffDays == 0 {
		return currentStreak
	}
	if diffDays == 1 {
		return currentStreak + 1
	}
	return 1
}
