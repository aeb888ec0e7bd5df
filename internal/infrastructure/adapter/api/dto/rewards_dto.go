package dto

import (
	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/account"
)

// ClaimBonusResponse is the body of a successful daily bonus claim
type ClaimBonusResponse struct {
	BonusAmount    int64 `json:"bonusAmount"`
	Streak         int   `json:"streak"`
	PenaltyApplied int64 `json:"penaltyApplied"`
	Balance        int64 `json:"balance"`
}

// QuizSubmitRequest is the body of a quiz submission. Answers holds the
// selected option index per question, -1 for a skipped question.
type QuizSubmitRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// QuizSubmitResponse is the body of a graded quiz submission
type QuizSubmitResponse struct {
	Score          int   `json:"score"`
	CorrectAnswers int   `json:"correctAnswers"`
	CoinsEarned    int64 `json:"coinsEarned"`
}

// PurchaseBadgeResponse is the body of a completed badge purchase
type PurchaseBadgeResponse struct {
	BadgeID string `json:"badgeId"`
	Price   int64  `json:"price"`
	Balance int64  `json:"balance"`
}

// QuizQuestionResponse is one question presented to the user; the correct
// index is deliberately not exposed
type QuizQuestionResponse struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

// NewQuizQuestionResponses maps questions to their response shape
func NewQuizQuestionResponses(questions []entity.QuizQuestion) []QuizQuestionResponse {
	out := make([]QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuizQuestionResponse{
			ID:         q.ID,
			Category:   string(q.Category),
			Prompt:     q.Prompt,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		})
	}
	return out
}

// BadgeCatalogItemResponse is one badge of the catalog decorated with the
// viewing account's ownership and affordability
type BadgeCatalogItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Owned       bool   `json:"owned"`
	Affordable  bool   `json:"affordable"`

	RequirementType     string `json:"requirementType,omitempty"`
	RequirementCategory string `json:"requirementCategory,omitempty"`
	RequirementValue    int    `json:"requirementValue,omitempty"`
}

// NewBadgeCatalogResponses maps decorated catalog items to their response shape
func NewBadgeCatalogResponses(items []account.CatalogItem) []BadgeCatalogItemResponse {
	out := make([]BadgeCatalogItemResponse, 0, len(items))
	for _, item := range items {
		r := BadgeCatalogItemResponse{
			ID:          item.Badge.ID,
			Name:        item.Badge.Name,
			Description: item.Badge.Description,
			Price:       item.Badge.Price,
			Icon:        item.Badge.Icon,
			Color:       item.Badge.Color,
			Owned:       item.Owned,
			Affordable:  item.Affordable,
		}
		if item.Badge.Requirement != nil {
			r.RequirementType = string(item.Badge.Requirement.Type)
			r.RequirementCategory = item.Badge.Requirement.Category
			r.RequirementValue = item.Badge.Requirement.Value
		}
		out = append(out, r)
	}
	return out
}
