package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnansweredIndex is the sentinel answer value for a skipped question.
// It never matches a correct index.
const UnansweredIndex = -1

// QuizQuestion is one question as supplied by the external question store:
// a prompt with four options and the index of the correct one.
type QuizQuestion struct {
	ID           string
	Category     Category
	Prompt       string
	Options      []string
	CorrectIndex int
	Difficulty   string
	Points       int
}

// QuizResult is the immutable audit record of one submitted quiz: the
// question set snapshot, the user's answers and the computed outcome.
type QuizResult struct {
	ID             string
	AccountID      string
	Category       Category
	Questions      []QuizQuestion
	UserAnswers    []int
	TotalQuestions int
	CorrectAnswers int
	Score          int // percentage, 0..100
	CoinsEarned    int64
	CreatedAt      time.Time
}

// NewQuizResult records one graded submission
func NewQuizResult(accountID string, category Category, questions []QuizQuestion, answers []int, correct, score int, coins int64, now time.Time) *QuizResult {
	return &QuizResult{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		Category:       category,
		Questions:      questions,
		UserAnswers:    answers,
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		Score:          score,
		CoinsEarned:    coins,
		CreatedAt:      now,
	}
}

// GradeQuiz counts correct answers and computes the percentage score.
// Guards against an empty question set so the score is never a division
// by zero.
func GradeQuiz(questions []QuizQuestion, answers []int) (correct, score int) {
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			correct++
		}
	}
	if len(questions) == 0 {
		return 0, 0
	}
	return correct, correct * 100 / len(questions)
}
