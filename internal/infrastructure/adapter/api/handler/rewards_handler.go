package handler

import (
	"net/http"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	domainerr "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	badgeUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/badge"
	bonusUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/bonus"
	quizUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/quiz"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RewardsHandler handles the coin-earning HTTP requests: daily bonus
// claims, quiz submissions and badge purchases
type RewardsHandler struct {
	bonusService *bonusUseCase.Service
	quizService  *quizUseCase.Service
	badgeService *badgeUseCase.Service
	logger       coreport.Logger
}

// NewRewardsHandler creates a new rewards handler instance
func NewRewardsHandler(
	bonusService *bonusUseCase.Service,
	quizService *quizUseCase.Service,
	badgeService *badgeUseCase.Service,
	logger coreport.Logger,
) *RewardsHandler {
	return &RewardsHandler{
		bonusService: bonusService,
		quizService:  quizService,
		badgeService: badgeService,
		logger:       logger,
	}
}

// ClaimBonus handles the POST /accounts/:accountId/bonus/claim endpoint
func (h *RewardsHandler) ClaimBonus(c *gin.Context) {
	accountID := c.Param("accountId")

	result, err := h.bonusService.ClaimDaily(c.Request.Context(), accountID)
	if err != nil {
		h.logger.Warn("Daily bonus claim rejected", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimBonusResponse{
		BonusAmount:    result.BonusAmount,
		Streak:         result.Streak,
		PenaltyApplied: result.PenaltyApplied,
		Balance:        result.Balance,
	})
}

// Questions handles the GET /quizzes/:category endpoint
func (h *RewardsHandler) Questions(c *gin.Context) {
	category := entity.Category(c.Param("category"))

	questions, err := h.quizService.Questions(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizQuestionResponses(questions))
}

// SubmitQuiz handles the POST /accounts/:accountId/quizzes/:category endpoint
func (h *RewardsHandler) SubmitQuiz(c *gin.Context) {
	accountID := c.Param("accountId")
	category := entity.Category(c.Param("category"))

	var req dto.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid quiz submission format", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.quizService.Submit(c.Request.Context(), accountID, category, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizSubmitResponse{
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		CoinsEarned:    result.CoinsEarned,
	})
}

// PurchaseBadge handles the POST /accounts/:accountId/badges/:badgeId/purchase endpoint
func (h *RewardsHandler) PurchaseBadge(c *gin.Context) {
	accountID := c.Param("accountId")
	badgeID := c.Param("badgeId")

	result, err := h.badgeService.Purchase(c.Request.Context(), accountID, badgeID)
	if err != nil {
		h.logger.Warn("Badge purchase rejected", map[string]any{
			"account_id": accountID,
			"badge_id":   badgeID,
			"error":      err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseBadgeResponse{
		BadgeID: result.BadgeID,
		Price:   result.Price,
		Balance: result.Balance,
	})
}
