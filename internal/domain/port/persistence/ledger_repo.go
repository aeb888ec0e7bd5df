package persistence

import (
	"context"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// LedgerRepository is the append-only per-account transaction log.
// Entries are never updated or deleted.
type LedgerRepository interface {
	// Append writes one immutable ledger entry
	Append(ctx context.Context, entry *entity.LedgerEntry) error

	// ListRecent returns up to limit entries for the account, most recent
	// first, skipping offset entries
	ListRecent(ctx context.Context, accountID string, limit, offset int) ([]*entity.LedgerEntry, error)

	// SumAmounts returns the sum of all signed entry amounts for the
	// account. By the ledger invariant this equals the account balance.
	SumAmounts(ctx context.Context, accountID string) (int64, error)
}
