package migration

import (
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{db: db, logger: logger}
}

// MigrateAll creates or updates the schema and seeds the catalogs
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.Account{},
		&model.AccountCategoryStat{},
		&model.AccountBadge{},
		&model.LedgerEntry{},
		&model.Notification{},
		&model.QuizResult{},
		&model.QuizQuestion{},
		&model.Badge{},
		&model.LeaderboardRank{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := SeedBadges(m.db, m.logger); err != nil {
		return err
	}
	if err := SeedQuestions(m.db, m.logger); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed successfully", nil)
	return nil
}
