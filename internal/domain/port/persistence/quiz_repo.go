package persistence

import (
	"context"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// QuizResultRepository stores the immutable per-submission audit records
type QuizResultRepository interface {
	// Create persists one quiz result
	Create(ctx context.Context, result *entity.QuizResult) error

	// HasPerfectScoreSince reports whether the account has at least one
	// 100%-scoring result in the category recorded at or after since.
	// Backs perfect-day detection.
	HasPerfectScoreSince(ctx context.Context, accountID string, category entity.Category, since time.Time) (bool, error)

	// ListRecent returns up to limit results for the account, most recent first
	ListRecent(ctx context.Context, accountID string, limit int) ([]*entity.QuizResult, error)
}

// QuestionRepository is the engine's view of the external question-content
// collaborator
type QuestionRepository interface {
	// FetchQuestions returns the ordered question set for a category
	//
	// Possible errors:
	// - ErrQuestionsNotFound: if the category has no questions
	FetchQuestions(ctx context.Context, category entity.Category) ([]entity.QuizQuestion, error)
}
