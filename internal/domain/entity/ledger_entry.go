package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerCategory tags what kind of event produced a ledger entry
type LedgerCategory string

// Ledger entry categories
const (
	LedgerBonus   LedgerCategory = "bonus"
	LedgerQuiz    LedgerCategory = "quiz"
	LedgerPenalty LedgerCategory = "penalty"
	LedgerBadge   LedgerCategory = "badge"
	LedgerWelcome LedgerCategory = "welcome"
)

// Direction marks an entry as a credit or debit. Redundant with the sign of
// the amount; kept for query convenience.
type Direction string

// Entry directions
const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// LedgerEntry is the immutable record of one balance-affecting event.
// Entries are append-only: exactly one is written per balance change, in
// the same atomic commit, and none is ever mutated or deleted. The sum of
// an account's signed amounts always equals its balance.
type LedgerEntry struct {
	ID          string
	AccountID   string
	Amount      int64 // signed: positive credits, negative debits
	Description string
	Category    LedgerCategory
	Direction   Direction
	CreatedAt   time.Time
}

// NewLedgerEntry creates an entry with a fresh id and a direction derived
// from the sign of amount
func NewLedgerEntry(accountID string, amount int64, description string, category LedgerCategory, now time.Time) *LedgerEntry {
	direction := DirectionCredit
	if amount < 0 {
		direction = DirectionDebit
	}
	return &LedgerEntry{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Direction:   direction,
		CreatedAt:   now,
	}
}
