package repository

import (
	"context"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// NotificationRepository implements the NotificationRepository port using
// GORM. Rows are appended and at most have their read flag flipped.
type NotificationRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

// Append writes one notification
func (r *NotificationRepository) Append(ctx context.Context, notification *entity.Notification) error {
	m := model.Notification{
		ID:        notification.ID,
		AccountID: notification.AccountID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		r.logger.Error("Failed to append notification", map[string]any{
			"account_id": notification.AccountID,
			"type":       string(notification.Type),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListRecent returns the account's notifications, most recent first
func (r *NotificationRepository) ListRecent(ctx context.Context, accountID string, limit int) ([]*entity.Notification, error) {
	var rows []model.Notification
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	notifications := make([]*entity.Notification, 0, len(rows))
	for _, m := range rows {
		notifications = append(notifications, &entity.Notification{
			ID:        m.ID,
			AccountID: m.AccountID,
			Title:     m.Title,
			Message:   m.Message,
			Type:      entity.NotificationType(m.Type),
			Read:      m.Read,
			CreatedAt: m.CreatedAt,
		})
	}
	return notifications, nil
}

// MarkRead sets the read flag on one of the account's notifications
func (r *NotificationRepository) MarkRead(ctx context.Context, accountID, notificationID string) error {
	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND account_id = ?", notificationID, accountID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Notification not found", map[string]any{
			"account_id":      accountID,
			"notification_id": notificationID,
		})
		return errs.ErrNotFound
	}
	return nil
}
