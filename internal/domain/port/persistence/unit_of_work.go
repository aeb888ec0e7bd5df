package persistence

import (
	"context"
)

// UnitOfWork coordinates the atomic batches the engine depends on: the
// balance mutation, its ledger entry and any notification, badge grant or
// quiz result commit together or not at all. Begin returns a transactional
// context; repositories obtained with that context are bound to the
// transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Accounts returns an account repository bound to the context's transaction
	Accounts(ctx context.Context) AccountRepository

	// Ledger returns a ledger repository bound to the context's transaction
	Ledger(ctx context.Context) LedgerRepository

	// Notifications returns a notification repository bound to the context's transaction
	Notifications(ctx context.Context) NotificationRepository

	// QuizResults returns a quiz result repository bound to the context's transaction
	QuizResults(ctx context.Context) QuizResultRepository

	// Badges returns a badge catalog repository bound to the context's transaction
	Badges(ctx context.Context) BadgeRepository
}
