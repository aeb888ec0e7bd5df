package model

import (
	"time"
)

// Account is the database model for the per-user aggregate. Per-category
// quiz state lives in AccountCategoryStat rows; owned badges in
// AccountBadge rows.
type Account struct {
	ID             string `gorm:"primaryKey;size:128"`
	DisplayName    string `gorm:"not null;size:255"`
	Balance        int64  `gorm:"not null;check:balance >= 0"`
	LastBonusClaim *time.Time
	LoginStreak    int `gorm:"not null;default:0"`
	LastLoginDate  *time.Time
	PerfectDays    int       `gorm:"not null;default:0"`
	PerfectWeeks   int       `gorm:"not null;default:0"`
	PerfectMonths  int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	CategoryStats []AccountCategoryStat `gorm:"foreignKey:AccountID;references:ID"`
	Badges        []AccountBadge        `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// AccountCategoryStat holds one quiz category's streak state and lifetime
// correct-answer counter for one account
type AccountCategoryStat struct {
	AccountID    string `gorm:"primaryKey;size:128"`
	Category     string `gorm:"primaryKey;size:32"`
	Streak       int    `gorm:"not null;default:0"`
	LastQuizDate *time.Time
	TotalCorrect int `gorm:"not null;default:0"`
}

// TableName specifies the table name for AccountCategoryStat
func (AccountCategoryStat) TableName() string {
	return "account_category_stats"
}

// AccountBadge is one owned badge
type AccountBadge struct {
	AccountID string    `gorm:"primaryKey;size:128"`
	BadgeID   string    `gorm:"primaryKey;size:64"`
	GrantedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountBadge
func (AccountBadge) TableName() string {
	return "account_badges"
}
