package badge

import (
	"context"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
)

// Service handles the two ways a badge reaches an account: purchase with
// coins, and automatic granting when an earning requirement is met.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a badge service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// PurchaseResult reports a completed purchase
type PurchaseResult struct {
	BadgeID string
	Price   int64
	Balance int64
}

// Purchase buys a badge with coins. The debit, the owned-set update and the
// badge ledger entry commit atomically; any validation failure leaves the
// account untouched.
//
// Possible errors: ErrAccountNotFound, ErrBadgeNotFound, ErrAlreadyOwned,
// ErrNotPurchasable, ErrInsufficientFunds.
func (s *Service) Purchase(ctx context.Context, accountID, badgeID string) (*PurchaseResult, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.purchase(txCtx, accountID, badgeID)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed after purchase error", map[string]any{
				"account_id": accountID,
				"badge_id":   badgeID,
				"error":      rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Badge purchased", map[string]any{
		"account_id": accountID,
		"badge_id":   badgeID,
		"price":      result.Price,
		"balance":    result.Balance,
	})
	return result, nil
}

func (s *Service) purchase(txCtx context.Context, accountID, badgeID string) (*PurchaseResult, error) {
	account, err := s.uow.Accounts(txCtx).GetByID(txCtx, accountID)
	if err != nil {
		return nil, err
	}

	badge, err := s.uow.Badges(txCtx).GetByID(txCtx, badgeID)
	if err != nil {
		return nil, err
	}

	if account.OwnsBadge(badgeID) {
		return nil, errs.ErrAlreadyOwned
	}
	if !badge.IsPurchasable() {
		return nil, errs.ErrNotPurchasable
	}
	if err := account.Debit(badge.Price); err != nil {
		return nil, err
	}
	account.GrantBadge(badgeID)

	now := s.timeProvider.Now()
	entry := entity.NewLedgerEntry(accountID, -badge.Price,
		fmt.Sprintf("Purchased badge: %s", badge.Name), entity.LedgerBadge, now)
	if err := s.uow.Ledger(txCtx).Append(txCtx, entry); err != nil {
		return nil, err
	}

	if err := s.uow.Accounts(txCtx).Update(txCtx, account); err != nil {
		return nil, err
	}

	return &PurchaseResult{
		BadgeID: badgeID,
		Price:   badge.Price,
		Balance: account.Balance(),
	}, nil
}

// CheckAndAward grants every unowned requirement-based badge whose
// requirement matches the given type, category and reached value. All
// grants plus one achievement notification per badge commit as one batch.
//
// This is always invoked as a best-effort follow-up to a primary operation,
// so it swallows and logs its own errors instead of propagating them; a
// badge-granting failure must never roll back the bonus claim or quiz
// submission that triggered it. Returns the ids actually granted.
func (s *Service) CheckAndAward(ctx context.Context, accountID string, reqType entity.RequirementType, value int, category string) []string {
	granted, err := s.checkAndAward(ctx, accountID, reqType, value, category)
	if err != nil {
		s.logger.Warn("Badge eligibility check failed", map[string]any{
			"account_id": accountID,
			"type":       string(reqType),
			"category":   category,
			"value":      value,
			"error":      err.Error(),
		})
		return nil
	}
	return granted
}

func (s *Service) checkAndAward(ctx context.Context, accountID string, reqType entity.RequirementType, value int, category string) ([]string, error) {
	catalog, err := s.uow.Badges(ctx).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, nil
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	granted, err := s.award(txCtx, accountID, catalog, reqType, value, category)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if len(granted) == 0 {
		_ = s.uow.Rollback(txCtx)
		return nil, nil
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Badges awarded", map[string]any{
		"account_id": accountID,
		"badges":     granted,
		"type":       string(reqType),
		"category":   category,
		"value":      value,
	})
	return granted, nil
}

func (s *Service) award(txCtx context.Context, accountID string, catalog []*entity.Badge, reqType entity.RequirementType, value int, category string) ([]string, error) {
	account, err := s.uow.Accounts(txCtx).GetByID(txCtx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	var granted []string
	for _, b := range catalog {
		if account.OwnsBadge(b.ID) || !b.MatchesRequirement(reqType, category, value) {
			continue
		}
		account.GrantBadge(b.ID)
		granted = append(granted, b.ID)

		notification := entity.NewNotification(accountID, "New Badge Earned!",
			fmt.Sprintf("You've earned the %q badge!", b.Name), entity.NotificationAchievement, now)
		if err := s.uow.Notifications(txCtx).Append(txCtx, notification); err != nil {
			return nil, err
		}
	}
	if len(granted) == 0 {
		return nil, nil
	}

	if err := s.uow.Accounts(txCtx).Update(txCtx, account); err != nil {
		return nil, err
	}
	return granted, nil
}
