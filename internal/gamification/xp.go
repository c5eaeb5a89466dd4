package gamification

import "github.com/20238643/UPSC-PrepHub/internal/models"

// levelThresholds[i] is the minimum cumulative XP required for level i+1.
// Level 1 starts at 0; there is no level beyond 10 — XP past the top
// threshold keeps accumulating without changing the level.
var levelThresholds = [...]int{0, 200, 500, 1000, 2000, 3500, 5500, 8000, 11000, 15000}

// MaxLevel is the terminal level.
const MaxLevel = len(levelThresholds)

// XPForQuiz returns the XP award for a quiz percentage (0-100, pre-rounded).
func XPForQuiz(percentage int) int {
	if percentage >= 80 {
		return 100
	}
	if percentage >= 60 {
		return 70
	}
	if percentage >= 40 {
		return 40
	}
	return 20
}

// LevelForXP returns the highest level whose threshold the XP total meets.
func LevelForXP(xp int) int {
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if xp >= levelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPForNextLevel returns the cumulative XP needed to reach level+1.
// At MaxLevel it clamps to the top threshold; callers should treat a level
// of MaxLevel as terminal.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level >= MaxLevel {
		return levelThresholds[MaxLevel-1]
	}
	return levelThresholds[level]
}

// XPForCurrentLevel returns the cumulative XP needed to have reached level.
func XPForCurrentLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelThresholds[level-1]
}

// RankForLevel maps a level to its cosmetic tier.
func RankForLevel(level int) models.Rank {
	switch {
	case level >= 10:
		return models.Rank{Name: "Platinum", Color: "#8ecae6", Icon: "💠"}
	case level >= 7:
		return models.Rank{Name: "Gold", Color: "#f39c12", Icon: "🥇"}
	case level >= 4:
		return models.Rank{Name: "Silver", Color: "#95a5a6", Icon: "🥈"}
	default:
		return models.Rank{Name: "Bronze", Color: "#cd7f32", Icon: "🥉"}
	}
}
