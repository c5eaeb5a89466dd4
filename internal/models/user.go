package models

import "time"

// User is the persisted user record. xp, streak, lastQuizDate and the
// attempt history are the source of truth; level, rank and badges are
// derived views recomputed at response time.
type User struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	QuizHistory  []QuizAttempt `json:"quizHistory"`
	XP           int           `json:"xp"`
	Streak       int           `json:"streak"`
	LastQuizDate *time.Time    `json:"lastQuizDate,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// QuizAttempt is one finished quiz. Attempts are append-only: once recorded
// they are never mutated or removed.
type QuizAttempt struct {
	Subject    string    `json:"subject"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	XPEarned   int       `json:"xpEarned"`
	Date       time.Time `json:"date"`
}

// UserInfo is the public identity slice of a user.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Info() UserInfo {
	return UserInfo{Name: u.Name, Email: u.Email}
}
