package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	accountUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/account"
	badgeUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/badge"
	bonusUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/bonus"
	leaderboardUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/leaderboard"
	penaltyUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/penalty"
	quizUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/quiz"

	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/handler"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/routes"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/database"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/database/migration"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/logger"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/time"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production,
		coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	dayLoc, err := time.LoadLocation(cfg.Rewards.DayBoundaryTimezone)
	if err != nil {
		appLogger.Error("Invalid day boundary timezone", map[string]any{
			"timezone": cfg.Rewards.DayBoundaryTimezone,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	tp := timeProvider.NewRealTimeProvider()

	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			appLogger.Error("Failed to close database connection", map[string]any{
				"error": cerr.Error(),
			})
		}
	}()

	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Standalone repositories for the read paths outside transactions
	accountRepo := repository.NewAccountRepository(conn.DB, tp, appLogger)
	questionRepo := repository.NewQuestionRepository(conn.DB, appLogger)
	notificationRepo := repository.NewNotificationRepository(conn.DB, appLogger)
	snapshotRepo := repository.NewLeaderboardRepository(conn.DB, tp, appLogger)

	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Use cases
	penaltyApplier := penaltyUseCase.NewApplier(uow, tp, appLogger)
	badgeService := badgeUseCase.NewService(uow, tp, appLogger)
	accountService := accountUseCase.NewService(uow, tp, appLogger, cfg.Rewards.WelcomeCredit)
	bonusService := bonusUseCase.NewService(uow, penaltyApplier, badgeService, tp, appLogger, bonusUseCase.Config{
		BaseAmount:    cfg.Rewards.BonusBaseAmount,
		StreakStep:    cfg.Rewards.BonusStreakStep,
		PenaltyPerDay: cfg.Rewards.LoginPenaltyPerDay,
	}, dayLoc)
	quizService := quizUseCase.NewService(uow, questionRepo, penaltyApplier, badgeService, tp, appLogger, quizUseCase.Config{
		CoinsPerCorrect: cfg.Rewards.CoinsPerCorrect,
		PenaltyPerDay:   cfg.Rewards.QuizPenaltyPerDay,
		WelcomeCredit:   cfg.Rewards.WelcomeCredit,
	}, dayLoc)
	leaderboardService := leaderboardUseCase.NewService(
		accountRepo, snapshotRepo, notificationRepo, tp, appLogger, cfg.Rewards.LeaderboardSize)

	// API handlers
	accountHandler := handler.NewAccountHandler(accountService, appLogger)
	rewardsHandler := handler.NewRewardsHandler(bonusService, quizService, badgeService, appLogger)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, accountHandler, rewardsHandler, leaderboardHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Periodic leaderboard refresh
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go runLeaderboardRefresh(refreshCtx, leaderboardService, appLogger, cfg.Rewards.LeaderboardInterval)

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)
	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// runLeaderboardRefresh recomputes the leaderboard snapshot on a fixed
// interval until the context is cancelled
func runLeaderboardRefresh(ctx context.Context, svc *leaderboardUseCase.Service, appLogger coreport.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := svc.Refresh(ctx); err != nil {
				appLogger.Error("Periodic leaderboard refresh failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// parsePort converts the configured port string, falling back to 5432
func parsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 {
		return 5432
	}
	return p
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or VC_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or VC_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or VC_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or VC_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Rewards.LeaderboardSize <= 0 {
		missingConfigs = append(missingConfigs, "rewards.leaderboardSize")
	}
	if cfg.Rewards.LeaderboardInterval <= 0 {
		missingConfigs = append(missingConfigs, "rewards.leaderboardInterval")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
