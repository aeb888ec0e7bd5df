package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleQuestions(n int) []QuizQuestion {
	qs := make([]QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, QuizQuestion{
			ID:           string(rune('a' + i)),
			Category:     CategoryMath,
			Prompt:       "?",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
		})
	}
	return qs
}

func TestGradeQuiz(t *testing.T) {
	questions := sampleQuestions(5) // correct answers: 0,1,2,3,0

	t.Run("Partial score", func(t *testing.T) {
		correct, score := GradeQuiz(questions, []int{0, 1, 2, 0, 1})
		assert.Equal(t, 3, correct)
		assert.Equal(t, 60, score)
	})

	t.Run("Perfect score", func(t *testing.T) {
		correct, score := GradeQuiz(questions, []int{0, 1, 2, 3, 0})
		assert.Equal(t, 5, correct)
		assert.Equal(t, 100, score)
	})

	t.Run("All wrong", func(t *testing.T) {
		correct, score := GradeQuiz(questions, []int{1, 0, 0, 0, 1})
		assert.Equal(t, 0, correct)
		assert.Equal(t, 0, score)
	})

	t.Run("Skipped questions never match", func(t *testing.T) {
		correct, score := GradeQuiz(questions, []int{UnansweredIndex, UnansweredIndex, 2, 3, UnansweredIndex})
		assert.Equal(t, 2, correct)
		assert.Equal(t, 40, score)
	})

	t.Run("Short answer slice grades what is present", func(t *testing.T) {
		correct, _ := GradeQuiz(questions, []int{0, 1})
		assert.Equal(t, 2, correct)
	})

	t.Run("Empty question set scores zero", func(t *testing.T) {
		correct, score := GradeQuiz(nil, nil)
		assert.Equal(t, 0, correct)
		assert.Equal(t, 0, score)
	})

	t.Run("Integer percentage truncates", func(t *testing.T) {
		three := sampleQuestions(3) // correct: 0,1,2
		correct, score := GradeQuiz(three, []int{0, 0, 0})
		assert.Equal(t, 1, correct)
		assert.Equal(t, 33, score)
	})
}

func TestNewQuizResult(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	questions := sampleQuestions(5)
	answers := []int{0, 1, 2, 0, 1}

	r := NewQuizResult("user-1", CategoryMath, questions, answers, 3, 60, 15, now)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "user-1", r.AccountID)
	assert.Equal(t, 5, r.TotalQuestions)
	assert.Equal(t, 3, r.CorrectAnswers)
	assert.Equal(t, 60, r.Score)
	assert.Equal(t, int64(15), r.CoinsEarned)
	assert.Equal(t, now, r.CreatedAt)
}
