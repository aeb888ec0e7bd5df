package persistence

import (
	"context"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// NotificationRepository is the append-only per-account message queue.
// Only the read flag is ever mutated.
type NotificationRepository interface {
	// Append writes one notification
	Append(ctx context.Context, notification *entity.Notification) error

	// ListRecent returns up to limit notifications for the account, most
	// recent first
	ListRecent(ctx context.Context, accountID string, limit int) ([]*entity.Notification, error)

	// MarkRead sets the read flag on one notification
	//
	// Possible errors:
	// - ErrNotFound: if the notification doesn't exist for this account
	MarkRead(ctx context.Context, accountID, notificationID string) error
}
