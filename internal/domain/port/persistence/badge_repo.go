package persistence

import (
	"context"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// BadgeRepository reads the shared badge catalog. The catalog is written
// only during seeding, never by the engine.
type BadgeRepository interface {
	// GetByID retrieves one badge
	//
	// Possible errors:
	// - ErrBadgeNotFound: if no badge with the id exists
	GetByID(ctx context.Context, id string) (*entity.Badge, error)

	// ListAll returns the whole catalog
	ListAll(ctx context.Context) ([]*entity.Badge, error)
}
