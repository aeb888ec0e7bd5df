package handler

import (
	"net/http"

	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	leaderboardUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/leaderboard"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardService *leaderboardUseCase.Service
	logger             coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(leaderboardService *leaderboardUseCase.Service, logger coreport.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// Top handles the GET /leaderboard endpoint
func (h *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := h.leaderboardService.Top(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLeaderboardResponses(entries))
}

// Refresh handles the POST /leaderboard/refresh endpoint. Normally driven
// by the periodic ticker; exposed for operators.
func (h *LeaderboardHandler) Refresh(c *gin.Context) {
	if err := h.leaderboardService.Refresh(c.Request.Context()); err != nil {
		h.logger.Error("Leaderboard refresh failed", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
