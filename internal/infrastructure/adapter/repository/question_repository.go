package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// QuestionRepository implements the QuestionRepository port against the
// seeded question catalog
type QuestionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewQuestionRepository creates a new QuestionRepository instance
func NewQuestionRepository(db *gorm.DB, logger coreport.Logger) *QuestionRepository {
	return &QuestionRepository{db: db, logger: logger}
}

// FetchQuestions returns the category's question set in seed order
func (r *QuestionRepository) FetchQuestions(ctx context.Context, category entity.Category) ([]entity.QuizQuestion, error) {
	var rows []model.QuizQuestion
	result := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if len(rows) == 0 {
		r.logger.Warn("No questions for category", map[string]any{"category": string(category)})
		return nil, errs.ErrQuestionsNotFound
	}

	questions := make([]entity.QuizQuestion, 0, len(rows))
	for _, m := range rows {
		var options []string
		if err := json.Unmarshal([]byte(m.Options), &options); err != nil {
			return nil, fmt.Errorf("%w: corrupt question options: %s", errs.ErrInternalServer, err.Error())
		}
		questions = append(questions, entity.QuizQuestion{
			ID:           m.ID,
			Category:     entity.Category(m.Category),
			Prompt:       m.Prompt,
			Options:      options,
			CorrectIndex: m.CorrectIndex,
			Difficulty:   m.Difficulty,
			Points:       m.Points,
		})
	}
	return questions, nil
}
