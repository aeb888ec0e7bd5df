package model

import (
	"time"
)

// LedgerEntry is the database model for the append-only transaction log.
// Rows are only ever inserted.
type LedgerEntry struct {
	ID          string    `gorm:"primaryKey;size:36"`
	AccountID   string    `gorm:"not null;size:128;index:idx_ledger_account_created,priority:1"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"not null;type:text"`
	Category    string    `gorm:"not null;size:32"`
	Direction   string    `gorm:"not null;size:16"`
	CreatedAt   time.Time `gorm:"not null;index:idx_ledger_account_created,priority:2,sort:desc"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
