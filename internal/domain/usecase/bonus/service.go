package bonus

import (
	"context"
	"fmt"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/badge"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/penalty"
)

// Config holds the daily bonus tunables
type Config struct {
	BaseAmount    int64 // coins for a one-day streak
	StreakStep    int64 // extra coins per additional streak day
	PenaltyPerDay int64 // coins charged per day of a broken login streak
}

// DefaultConfig returns the production bonus rules: 100 base, +5 per
// streak day, 5 coins penalty per broken-streak day.
func DefaultConfig() Config {
	return Config{BaseAmount: 100, StreakStep: 5, PenaltyPerDay: 5}
}

// Service orchestrates the daily login bonus claim: same-day rejection,
// streak advancement, penalty on a broken streak, credit and ledger entry
// in one atomic commit, then a best-effort streak badge check.
type Service struct {
	uow          persistence.UnitOfWork
	penalties    *penalty.Applier
	badges       *badge.Service
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
	dayLoc       *time.Location
}

// NewService creates a bonus service. dayLoc fixes the calendar-day
// boundary for "today" comparisons.
func NewService(
	uow persistence.UnitOfWork,
	penalties *penalty.Applier,
	badges *badge.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
	dayLoc *time.Location,
) *Service {
	return &Service{
		uow:          uow,
		penalties:    penalties,
		badges:       badges,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		dayLoc:       dayLoc,
	}
}

// ClaimResult reports a successful daily bonus claim
type ClaimResult struct {
	BonusAmount    int64
	Streak         int
	PenaltyApplied int64
	Balance        int64
}

// ClaimDaily claims the daily login bonus for the account. A second claim
// on the same calendar day fails with ErrAlreadyClaimed and mutates
// nothing. A gap of more than one day resets the streak and debits
// brokenStreak * PenaltyPerDay coins in the same commit as the credit.
func (s *Service) ClaimDaily(ctx context.Context, accountID string) (*ClaimResult, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.claim(txCtx, accountID)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed after claim error", map[string]any{
				"account_id": accountID,
				"error":      rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Daily bonus claimed", map[string]any{
		"account_id": accountID,
		"bonus":      result.BonusAmount,
		"streak":     result.Streak,
		"penalty":    result.PenaltyApplied,
		"balance":    result.Balance,
	})

	// Best-effort follow-up; a failure here must not undo the claim
	s.badges.CheckAndAward(ctx, accountID, entity.RequirementStreak, result.Streak, "login")

	return result, nil
}

func (s *Service) claim(txCtx context.Context, accountID string) (*ClaimResult, error) {
	account, err := s.uow.Accounts(txCtx).GetByID(txCtx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if account.LastBonusClaim != nil && entity.SameCalendarDay(*account.LastBonusClaim, now, s.dayLoc) {
		return nil, errs.ErrAlreadyClaimed
	}

	streak := entity.ComputeStreak(account.LastLoginDate, now, account.LoginStreak, s.dayLoc)

	var penaltyApplied int64
	if streak.PenaltyDue {
		penaltyApplied, err = s.penalties.Apply(txCtx, account, penalty.KindMissedLogin,
			int64(account.LoginStreak)*s.cfg.PenaltyPerDay)
		if err != nil {
			return nil, err
		}
	}

	bonusAmount := s.cfg.BaseAmount + int64(streak.NewStreak-1)*s.cfg.StreakStep
	if err := account.Credit(bonusAmount); err != nil {
		return nil, err
	}
	account.LastBonusClaim = &now
	account.LastLoginDate = &now
	account.LoginStreak = streak.NewStreak

	entry := entity.NewLedgerEntry(accountID, bonusAmount,
		fmt.Sprintf("Daily login bonus (%d day streak)", streak.NewStreak), entity.LedgerBonus, now)
	if err := s.uow.Ledger(txCtx).Append(txCtx, entry); err != nil {
		return nil, err
	}

	if err := s.uow.Accounts(txCtx).Update(txCtx, account); err != nil {
		return nil, err
	}

	return &ClaimResult{
		BonusAmount:    bonusAmount,
		Streak:         streak.NewStreak,
		PenaltyApplied: penaltyApplied,
		Balance:        account.Balance(),
	}, nil
}
