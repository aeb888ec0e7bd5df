package repository

import (
	"context"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LeaderboardRepository implements the LeaderboardRepository port using
// GORM. The snapshot is one table replaced wholesale on each save.
type LeaderboardRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLeaderboardRepository creates a new LeaderboardRepository instance
func NewLeaderboardRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LeaderboardRepository {
	return &LeaderboardRepository{db: db, timeProvider: timeProvider, logger: logger}
}

// GetSnapshot returns the previously saved ranking, best rank first
func (r *LeaderboardRepository) GetSnapshot(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	var rows []model.LeaderboardRank
	if result := r.db.WithContext(ctx).Order("rank ASC").Find(&rows); result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]entity.LeaderboardEntry, 0, len(rows))
	for _, m := range rows {
		entries = append(entries, entity.LeaderboardEntry{
			AccountID:   m.AccountID,
			DisplayName: m.DisplayName,
			Balance:     m.Balance,
			Rank:        m.Rank,
		})
	}
	return entries, nil
}

// SaveSnapshot replaces the stored ranking with the given one
func (r *LeaderboardRepository) SaveSnapshot(ctx context.Context, entries []entity.LeaderboardEntry) error {
	takenAt := r.timeProvider.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("1 = 1").Delete(&model.LeaderboardRank{}); result.Error != nil {
			return result.Error
		}
		if len(entries) == 0 {
			return nil
		}
		rows := make([]model.LeaderboardRank, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, model.LeaderboardRank{
				Rank:        e.Rank,
				AccountID:   e.AccountID,
				DisplayName: e.DisplayName,
				Balance:     e.Balance,
				TakenAt:     takenAt,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		r.logger.Error("Failed to save leaderboard snapshot", map[string]any{
			"entries": len(entries),
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}
