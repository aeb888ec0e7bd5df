package routes

import (
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/handler"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	rewardsHandler *handler.RewardsHandler,
	leaderboardHandler *handler.LeaderboardHandler,
) {
	// Account routes
	accountRoutes := router.Group("/accounts")
	{
		accountRoutes.POST("", accountHandler.Signup)
		accountRoutes.GET("/:accountId", accountHandler.Get)
		accountRoutes.GET("/:accountId/ledger", accountHandler.Ledger)
		accountRoutes.GET("/:accountId/ledger/verify", accountHandler.VerifyLedger)
		accountRoutes.GET("/:accountId/notifications", accountHandler.Notifications)
		accountRoutes.POST("/:accountId/notifications/:notificationId/read", accountHandler.MarkNotificationRead)
		accountRoutes.GET("/:accountId/badges", accountHandler.BadgeCatalog)

		// Earning routes
		accountRoutes.POST("/:accountId/bonus/claim", rewardsHandler.ClaimBonus)
		accountRoutes.POST("/:accountId/quizzes/:category", rewardsHandler.SubmitQuiz)
		accountRoutes.POST("/:accountId/badges/:badgeId/purchase", rewardsHandler.PurchaseBadge)
	}

	// Quiz content routes
	router.GET("/quizzes/:category", rewardsHandler.Questions)

	// Leaderboard routes
	leaderboardRoutes := router.Group("/leaderboard")
	{
		leaderboardRoutes.GET("", leaderboardHandler.Top)
		leaderboardRoutes.POST("/refresh", leaderboardHandler.Refresh)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
