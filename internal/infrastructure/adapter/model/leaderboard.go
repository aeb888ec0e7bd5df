package model

import (
	"time"
)

// LeaderboardRank is one row of the singleton leaderboard snapshot. The
// snapshot is overwritten wholesale: all rows deleted, new rows inserted.
type LeaderboardRank struct {
	Rank        int       `gorm:"primaryKey"`
	AccountID   string    `gorm:"not null;size:128"`
	DisplayName string    `gorm:"not null;size:255"`
	Balance     int64     `gorm:"not null"`
	TakenAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for LeaderboardRank
func (LeaderboardRank) TableName() string {
	return "leaderboard_ranks"
}
