package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// QuizResultRepository implements the QuizResultRepository port using GORM.
// Question snapshots and answers are serialized to JSON text columns.
type QuizResultRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewQuizResultRepository creates a new QuizResultRepository instance
func NewQuizResultRepository(db *gorm.DB, logger coreport.Logger) *QuizResultRepository {
	return &QuizResultRepository{db: db, logger: logger}
}

// Create persists one immutable quiz result
func (r *QuizResultRepository) Create(ctx context.Context, result *entity.QuizResult) error {
	questions, err := json.Marshal(result.Questions)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize questions: %s", errs.ErrInternalServer, err.Error())
	}
	answers, err := json.Marshal(result.UserAnswers)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize answers: %s", errs.ErrInternalServer, err.Error())
	}

	m := model.QuizResult{
		ID:             result.ID,
		AccountID:      result.AccountID,
		Category:       string(result.Category),
		Questions:      string(questions),
		UserAnswers:    string(answers),
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		Score:          result.Score,
		CoinsEarned:    result.CoinsEarned,
		CreatedAt:      result.CreatedAt,
	}
	if res := r.db.WithContext(ctx).Create(&m); res.Error != nil {
		r.logger.Error("Failed to create quiz result", map[string]any{
			"account_id": result.AccountID,
			"category":   string(result.Category),
			"error":      res.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, res.Error.Error())
	}
	return nil
}

// HasPerfectScoreSince reports whether the account scored 100% in the
// category at or after since
func (r *QuizResultRepository) HasPerfectScoreSince(ctx context.Context, accountID string, category entity.Category, since time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.QuizResult{}).
		Where("account_id = ? AND category = ? AND score = 100 AND created_at >= ?", accountID, string(category), since).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// ListRecent returns the account's quiz results, most recent first
func (r *QuizResultRepository) ListRecent(ctx context.Context, accountID string, limit int) ([]*entity.QuizResult, error) {
	var rows []model.QuizResult
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	results := make([]*entity.QuizResult, 0, len(rows))
	for _, m := range rows {
		e, err := quizResultModelToEntity(&m)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, nil
}

func quizResultModelToEntity(m *model.QuizResult) (*entity.QuizResult, error) {
	var questions []entity.QuizQuestion
	if err := json.Unmarshal([]byte(m.Questions), &questions); err != nil {
		return nil, fmt.Errorf("%w: corrupt question snapshot: %s", errs.ErrInternalServer, err.Error())
	}
	var answers []int
	if err := json.Unmarshal([]byte(m.UserAnswers), &answers); err != nil {
		return nil, fmt.Errorf("%w: corrupt answer record: %s", errs.ErrInternalServer, err.Error())
	}
	return &entity.QuizResult{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Category:       entity.Category(m.Category),
		Questions:      questions,
		UserAnswers:    answers,
		TotalQuestions: m.TotalQuestions,
		CorrectAnswers: m.CorrectAnswers,
		Score:          m.Score,
		CoinsEarned:    m.CoinsEarned,
		CreatedAt:      m.CreatedAt,
	}, nil
}
