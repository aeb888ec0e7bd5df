package account

import (
	"context"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
)

// WelcomeDescription is the ledger line for the onboarding credit
const WelcomeDescription = "Welcome bonus for joining VitaCoin!"

// Service handles account lifecycle and the read surface consumed by the
// UI layer: the aggregate, ledger pages, notifications and the decorated
// badge catalog.
type Service struct {
	uow           persistence.UnitOfWork
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	welcomeCredit int64
}

// NewService creates an account service. welcomeCredit is the fixed
// onboarding amount credited at signup.
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger, welcomeCredit int64) *Service {
	return &Service{
		uow:           uow,
		timeProvider:  timeProvider,
		logger:        logger,
		welcomeCredit: welcomeCredit,
	}
}

// CreateWithWelcome creates an account with the onboarding credit and its
// welcome ledger entry through the repositories bound to txCtx, so signup
// and the quiz bootstrap fallback share one onboarding path and the
// balance never appears without the entry explaining it.
func CreateWithWelcome(txCtx context.Context, uow persistence.UnitOfWork, id, displayName string, credit int64, now time.Time) (*entity.Account, error) {
	account, err := entity.NewAccount(id, displayName, now)
	if err != nil {
		return nil, err
	}
	if err := account.Credit(credit); err != nil {
		return nil, err
	}
	if err := uow.Accounts(txCtx).Create(txCtx, account); err != nil {
		return nil, err
	}

	entry := entity.NewLedgerEntry(id, credit, WelcomeDescription, entity.LedgerWelcome, now)
	if err := uow.Ledger(txCtx).Append(txCtx, entry); err != nil {
		return nil, err
	}
	return account, nil
}

// Signup creates a new account with the onboarding credit, atomically with
// its welcome ledger entry.
//
// Possible errors: ErrDuplicateAccount, ErrValidation.
func (s *Service) Signup(ctx context.Context, id, displayName string) (*entity.Account, error) {
	if err := ValidateDisplayName(displayName); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := CreateWithWelcome(txCtx, s.uow, id, displayName, s.welcomeCredit, s.timeProvider.Now())
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"account_id":     id,
		"welcome_credit": s.welcomeCredit,
	})
	return account, nil
}

// Get returns the account aggregate
func (s *Service) Get(ctx context.Context, id string) (*entity.Account, error) {
	return s.uow.Accounts(ctx).GetByID(ctx, id)
}

// Ledger returns a page of the account's ledger, most recent first
func (s *Service) Ledger(ctx context.Context, accountID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	if _, err := s.uow.Accounts(ctx).GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.uow.Ledger(ctx).ListRecent(ctx, accountID, limit, offset)
}

// Notifications returns the account's most recent notifications
func (s *Service) Notifications(ctx context.Context, accountID string, limit int) ([]*entity.Notification, error) {
	return s.uow.Notifications(ctx).ListRecent(ctx, accountID, limit)
}

// MarkNotificationRead flips the read flag on one notification
func (s *Service) MarkNotificationRead(ctx context.Context, accountID, notificationID string) error {
	return s.uow.Notifications(ctx).MarkRead(ctx, accountID, notificationID)
}

// CatalogItem is one badge decorated with per-account purchase state
type CatalogItem struct {
	Badge      *entity.Badge
	Owned      bool
	Affordable bool
}

// Catalog returns the badge catalog with owned/affordable flags for the
// account
func (s *Service) Catalog(ctx context.Context, accountID string) ([]CatalogItem, error) {
	account, err := s.uow.Accounts(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	badges, err := s.uow.Badges(ctx).ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]CatalogItem, 0, len(badges))
	for _, b := range badges {
		items = append(items, CatalogItem{
			Badge:      b,
			Owned:      account.OwnsBadge(b.ID),
			Affordable: b.IsPurchasable() && account.Balance() >= b.Price,
		})
	}
	return items, nil
}

// VerifyLedgerBalance recomputes the sum of the account's ledger and
// compares it to the stored balance. Diagnostic surface for the invariant
// balance == sum(ledger).
func (s *Service) VerifyLedgerBalance(ctx context.Context, accountID string) (bool, error) {
	account, err := s.uow.Accounts(ctx).GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}
	sum, err := s.uow.Ledger(ctx).SumAmounts(ctx, accountID)
	if err != nil {
		return false, err
	}
	if sum != account.Balance() {
		s.logger.Error("Ledger sum does not match balance", map[string]any{
			"account_id": accountID,
			"balance":    account.Balance(),
			"ledger_sum": sum,
		})
		return false, nil
	}
	return true, nil
}

// ValidateDisplayName rejects empty display names
func ValidateDisplayName(name string) error {
	if name == "" {
		return errs.NewValidationError("display name", "must not be empty")
	}
	return nil
}
