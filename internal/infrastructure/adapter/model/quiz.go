package model

import (
	"time"
)

// QuizResult is the database model for the immutable per-submission audit
// record. The question set snapshot and the user's answers are stored as
// JSON text.
type QuizResult struct {
	ID             string    `gorm:"primaryKey;size:36"`
	AccountID      string    `gorm:"not null;size:128;index:idx_quiz_results_lookup,priority:1"`
	Category       string    `gorm:"not null;size:32;index:idx_quiz_results_lookup,priority:2"`
	Questions      string    `gorm:"not null;type:text"`
	UserAnswers    string    `gorm:"not null;type:text"`
	TotalQuestions int       `gorm:"not null"`
	CorrectAnswers int       `gorm:"not null"`
	Score          int       `gorm:"not null"`
	CoinsEarned    int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null;index:idx_quiz_results_lookup,priority:3"`
}

// TableName specifies the table name for QuizResult
func (QuizResult) TableName() string {
	return "quiz_results"
}

// QuizQuestion is the database model for the seeded question catalog,
// read through the QuestionRepository port. Options are stored as JSON
// text.
type QuizQuestion struct {
	ID           string `gorm:"primaryKey;size:36"`
	Category     string `gorm:"not null;size:32;index"`
	Prompt       string `gorm:"not null;type:text"`
	Options      string `gorm:"not null;type:text"`
	CorrectIndex int    `gorm:"not null"`
	Difficulty   string `gorm:"not null;size:16"`
	Points       int    `gorm:"not null;default:5"`
}

// TableName specifies the table name for QuizQuestion
func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
