package persistence

import (
	"context"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// LeaderboardRepository stores the singleton leaderboard snapshot, used
// only to diff against the next computation
type LeaderboardRepository interface {
	// GetSnapshot returns the previous ranked list; empty when no snapshot
	// has been taken yet
	GetSnapshot(ctx context.Context) ([]entity.LeaderboardEntry, error)

	// SaveSnapshot overwrites the stored snapshot wholesale
	SaveSnapshot(ctx context.Context, entries []entity.LeaderboardEntry) error
}
