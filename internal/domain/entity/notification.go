package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies notifications for the UI layer
type NotificationType string

// Notification types
const (
	NotificationLeaderboard NotificationType = "leaderboard"
	NotificationPenalty     NotificationType = "penalty"
	NotificationAchievement NotificationType = "achievement"
	NotificationReminder    NotificationType = "reminder"
)

// Notification is an append-only per-account message. Only the read flag
// is ever mutated, by the user.
type Notification struct {
	ID        string
	AccountID string
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}

// NewNotification creates an unread notification with a fresh id
func NewNotification(accountID, title, message string, typ NotificationType, now time.Time) *Notification {
	return &Notification{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: now,
	}
}
