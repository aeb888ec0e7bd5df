package penalty

import (
	"context"
	"math/rand"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
)

// Kind distinguishes which broken streak triggered the penalty
type Kind string

// Penalty kinds
const (
	KindMissedLogin Kind = "missed_login"
	KindMissedQuiz  Kind = "missed_quiz"
)

// motivationalMessages is the fixed pool of encouragement strings attached
// to penalty notifications, one picked uniformly at random.
var motivationalMessages = []string{
	"Don't give up! Every expert was once a beginner.",
	"Consistency is key to success. You've got this!",
	"Small steps every day lead to big results.",
	"Your comeback is always stronger than your setback!",
	"Progress, not perfection. Keep going!",
}

// Applier debits an account for a broken streak and records the debit in
// the ledger together with a motivational notification. Apply always runs
// inside the caller's transaction: a streak reset and its penalty commit
// together or not at all.
type Applier struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	// pickMessage indexes the message pool; swappable for deterministic tests
	pickMessage func(n int) int
}

// NewApplier creates a penalty applier
func NewApplier(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Applier {
	return &Applier{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		pickMessage:  rand.Intn,
	}
}

// Messages returns the fixed encouragement pool
func Messages() []string {
	return motivationalMessages
}

// Apply debits the account by min(rawAmount, balance) and appends the
// penalty ledger entry and notification through the repositories bound to
// ctx's transaction. The account mutation is in-memory; the caller persists
// the account within the same transaction. A non-positive rawAmount is a
// no-op. Returns the coins actually debited.
func (p *Applier) Apply(ctx context.Context, account *entity.Account, kind Kind, rawAmount int64) (int64, error) {
	if rawAmount <= 0 {
		return 0, nil
	}

	now := p.timeProvider.Now()
	debited := account.DebitClamped(rawAmount)

	description := "Penalty for missed daily login"
	if kind == KindMissedQuiz {
		description = "Penalty for missed daily quiz"
	}

	entry := entity.NewLedgerEntry(account.ID, -debited, description, entity.LedgerPenalty, now)
	// A penalty is a debit even when clamped to zero by an empty balance
	entry.Direction = entity.DirectionDebit
	if err := p.uow.Ledger(ctx).Append(ctx, entry); err != nil {
		return 0, err
	}

	message := motivationalMessages[p.pickMessage(len(motivationalMessages))]
	notification := entity.NewNotification(account.ID, "Stay Motivated!", message, entity.NotificationPenalty, now)
	if err := p.uow.Notifications(ctx).Append(ctx, notification); err != nil {
		return 0, err
	}

	p.logger.Info("Penalty applied", map[string]any{
		"account_id": account.ID,
		"kind":       string(kind),
		"raw_amount": rawAmount,
		"debited":    debited,
		"balance":    account.Balance(),
	})

	return debited, nil
}
