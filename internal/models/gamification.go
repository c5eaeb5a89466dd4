package models

// ── Derived Views ─────────────────────────────────────────

// Badge is an unlocked achievement. Badges are never persisted; they are
// recomputed from the user's history and stats on every read.
type Badge struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// Rank is the cosmetic tier derived from a user's level.
type Rank struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// SubjectStat summarizes a user's attempts in one subject.
type SubjectStat struct {
	Attempts int    `json:"attempts"`
	Best     int    `json:"best"`
	Latest   int    `json:"latest"`
	Trend    string `json:"trend"`
}

// Trend values for SubjectStat.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendSame = "same"
	TrendNone = "none"
)

// ── Request Types ─────────────────────────────────────────

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitQuizRequest records a finished quiz. Score is a pointer so a missing
// field can be told apart from a legitimate zero.
type SubmitQuizRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Score   *int   `json:"score"`
	Total   int    `json:"total"`
}

// ── Response Types ────────────────────────────────────────

// MessageResponse is the uniform failure (and simple success) envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProfileView is the full derived profile returned on login.
type ProfileView struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	XP           int           `json:"xp"`
	Level        int           `json:"level"`
	Streak       int           `json:"streak"`
	Rank         Rank          `json:"rank"`
	Badges       []Badge       `json:"badges"`
	QuizHistory  []QuizAttempt `json:"quizHistory"`
	XPForNext    int           `json:"xpForNext"`
	XPForCurrent int           `json:"xpForCurrent"`
}

type RegisterResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    ProfileView `json:"user"`
}

type QuizResultResponse struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	XPEarned     int     `json:"xpEarned"`
	TotalXP      int     `json:"totalXP"`
	Level        int     `json:"level"`
	Streak       int     `json:"streak"`
	Rank         Rank    `json:"rank"`
	Badges       []Badge `json:"badges"`
	XPForNext    int     `json:"xpForNext"`
	XPForCurrent int     `json:"xpForCurrent"`
}

type HistoryResponse struct {
	Success      bool          `json:"success"`
	User         UserInfo      `json:"user"`
	XP           int           `json:"xp"`
	Level        int           `json:"level"`
	Streak       int           `json:"streak"`
	Rank         Rank          `json:"rank"`
	Badges       []Badge       `json:"badges"`
	QuizHistory  []QuizAttempt `json:"quizHistory"`
	XPForNext    int           `json:"xpForNext"`
	XPForCurrent int           `json:"xpForCurrent"`
}

type StatsResponse struct {
	Success       bool                   `json:"success"`
	User          UserInfo               `json:"user"`
	XP            int                    `json:"xp"`
	Level         int                    `json:"level"`
	Streak        int                    `json:"streak"`
	Rank          Rank                   `json:"rank"`
	Badges        []Badge                `json:"badges"`
	SubjectStats  map[string]SubjectStat `json:"subjectStats"`
	RecentHistory []QuizAttempt          `json:"recentHistory"`
	TotalQuizzes  int                    `json:"totalQuizzes"`
	XPForNext     int                    `json:"xpForNext"`
	XPForCurrent  int                    `json:"xpForCurrent"`
}

type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
}
