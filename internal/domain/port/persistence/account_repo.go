package persistence

import (
	"context"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// AccountRepository defines the operations on the mutable account record
type AccountRepository interface {
	// GetByID retrieves an account by its id
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with the id exists
	// - ErrDatabaseConnection: if the store is unavailable
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// Create persists a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: if an account with the same id already exists
	// - ErrDatabaseConnection: if the store is unavailable
	Create(ctx context.Context, account *entity.Account) error

	// Update overwrites the mutable account state (balance, streak fields,
	// counters, owned badges)
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account doesn't exist
	// - ErrDatabaseConnection: if the store is unavailable
	Update(ctx context.Context, account *entity.Account) error

	// ListTopByBalance returns up to limit accounts ordered by balance
	// descending. Ties are returned in a stable order: earliest creation
	// first, then id.
	ListTopByBalance(ctx context.Context, limit int) ([]*entity.Account, error)
}
