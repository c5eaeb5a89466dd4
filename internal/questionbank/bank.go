package questionbank

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

// DefaultSampleSize is how many questions a quiz serves per subject.
const DefaultSampleSize = 20

// Question is one multiple-choice question from the bank. The bank is
// read-only; the service only samples from it.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Bank holds the question collection keyed by subject, loaded once at startup.
type Bank struct {
	subjects map[string][]Question
}

// New builds a bank from an already-loaded subject map.
func New(subjects map[string][]Question) *Bank {
	if subjects == nil {
		subjects = make(map[string][]Question)
	}
	return &Bank{subjects: subjects}
}

// Load reads a JSON file of the form {"Geography": [question, ...], ...}.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	subjects := make(map[string][]Question)
	if err := json.Unmarshal(data, &subjects); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return &Bank{subjects: subjects}, nil
}

// Subjects returns the available subject names, sorted.
func (b *Bank) Subjects() []string {
	names := make([]string, 0, len(b.subjects))
	for s := range b.subjects {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// Sample returns up to n questions for a subject, uniformly shuffled with
// Fisher-Yates. The bank's own slice is never reordered.
func (b *Bank) Sample(subject string, n int) ([]Question, error) {
	questions, ok := b.subjects[subject]
	if !ok {
		return nil, models.ErrSubjectNotFound
	}

	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled, nil
}
