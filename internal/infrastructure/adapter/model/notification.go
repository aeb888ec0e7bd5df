package model

import (
	"time"
)

// Notification is the database model for per-account messages. Only the
// Read column is ever updated.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36"`
	AccountID string    `gorm:"not null;size:128;index:idx_notifications_account_created,priority:1"`
	Title     string    `gorm:"not null;size:255"`
	Message   string    `gorm:"not null;type:text"`
	Type      string    `gorm:"not null;size:32"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:idx_notifications_account_created,priority:2,sort:desc"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
