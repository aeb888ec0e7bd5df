package leaderboard

import (
	"context"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
)

// Service ranks accounts by balance, diffs the ranking against the
// previous snapshot and notifies accounts whose rank changed. The refresh
// is read-then-write but deliberately not one cross-account transaction:
// rank-change notifications are written independently, so a failure midway
// leaves some accounts un-notified without touching any balance.
type Service struct {
	accounts      persistence.AccountRepository
	snapshots     persistence.LeaderboardRepository
	notifications persistence.NotificationRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	size          int
}

// NewService creates a leaderboard service keeping the top size accounts
func NewService(
	accounts persistence.AccountRepository,
	snapshots persistence.LeaderboardRepository,
	notifications persistence.NotificationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	size int,
) *Service {
	return &Service{
		accounts:      accounts,
		snapshots:     snapshots,
		notifications: notifications,
		timeProvider:  timeProvider,
		logger:        logger,
		size:          size,
	}
}

// Top returns the current ranking without persisting a snapshot
func (s *Service) Top(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	accounts, err := s.accounts.ListTopByBalance(ctx, s.size)
	if err != nil {
		return nil, err
	}
	return entity.RankLeaderboard(accounts), nil
}

// Refresh recomputes the ranking, emits one notification per account whose
// rank changed since the previous snapshot, and overwrites the snapshot.
// New entrants with no previous rank are not notified.
func (s *Service) Refresh(ctx context.Context) error {
	current, err := s.Top(ctx)
	if err != nil {
		return err
	}

	previous, err := s.snapshots.GetSnapshot(ctx)
	if err != nil {
		return err
	}

	previousRanks := make(map[string]int, len(previous))
	for _, e := range previous {
		previousRanks[e.AccountID] = e.Rank
	}

	now := s.timeProvider.Now()
	notified := 0
	for _, e := range current {
		prevRank, seen := previousRanks[e.AccountID]
		if !seen || prevRank == e.Rank {
			continue
		}
		notification := entity.NewNotification(e.AccountID, "Leaderboard Update!",
			fmt.Sprintf("You moved from rank %d to rank %d!", prevRank, e.Rank),
			entity.NotificationLeaderboard, now)
		if err := s.notifications.Append(ctx, notification); err != nil {
			// Un-notified is acceptable; balances are untouched either way
			s.logger.Warn("Failed to write rank-change notification", map[string]any{
				"account_id": e.AccountID,
				"old_rank":   prevRank,
				"new_rank":   e.Rank,
				"error":      err.Error(),
			})
			continue
		}
		notified++
	}

	if err := s.snapshots.SaveSnapshot(ctx, current); err != nil {
		return err
	}

	s.logger.Info("Leaderboard snapshot refreshed", map[string]any{
		"entries":  len(current),
		"notified": notified,
	})
	return nil
}
