package entity

import (
	"time"

	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
)

// Account is the per-user aggregate: coin balance, streak state, owned
// badges and lifetime counters. The balance is private; it only moves
// through Credit and Debit so it can never go negative and every change
// can be paired with a ledger entry by the use cases.
type Account struct {
	ID             string
	DisplayName    string
	balance        int64
	LastBonusClaim *time.Time
	LoginStreak    int
	LastLoginDate  *time.Time

	QuizStreaks      map[Category]int
	LastQuizDates    map[Category]*time.Time
	TotalQuizCorrect map[Category]int

	Badges []string

	PerfectDays   int
	PerfectWeeks  int
	PerfectMonths int

	CreatedAt time.Time
}

// NewAccount creates a fresh account with zeroed streaks and counters.
// The onboarding credit is applied by the signup flow, not here, so the
// welcome ledger entry and the balance always move together.
func NewAccount(id, displayName string, now time.Time) (*Account, error) {
	if id == "" {
		return nil, errs.NewValidationError("account id", "must not be empty")
	}

	a := &Account{
		ID:               id,
		DisplayName:      displayName,
		QuizStreaks:      make(map[Category]int, len(Categories())),
		LastQuizDates:    make(map[Category]*time.Time, len(Categories())),
		TotalQuizCorrect: make(map[Category]int, len(Categories())),
		Badges:           []string{},
		CreatedAt:        now,
	}
	for _, c := range Categories() {
		a.QuizStreaks[c] = 0
		a.LastQuizDates[c] = nil
		a.TotalQuizCorrect[c] = 0
	}
	return a, nil
}

// Balance returns the current coin balance
func (a *Account) Balance() int64 {
	return a.balance
}

// SetBalance overwrites the balance directly (repository hydration only)
func (a *Account) SetBalance(balance int64) {
	a.balance = balance
}

// Credit adds amount coins to the balance
func (a *Account) Credit(amount int64) error {
	if amount < 0 {
		return errs.NewValidationError("amount", "credit must not be negative")
	}
	a.balance += amount
	return nil
}

// Debit removes amount coins from the balance, failing when the balance
// would go negative
func (a *Account) Debit(amount int64) error {
	if amount < 0 {
		return errs.NewValidationError("amount", "debit must not be negative")
	}
	if a.balance < amount {
		return errs.NewInsufficientFundsError(a.ID, amount, a.balance)
	}
	a.balance -= amount
	return nil
}

// DebitClamped removes up to amount coins, stopping at zero. Returns the
// coins actually removed. Used by penalties, which never push an account
// into the negative.
func (a *Account) DebitClamped(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	if amount > a.balance {
		amount = a.balance
	}
	a.balance -= amount
	return amount
}

// OwnsBadge reports whether the account already holds the badge
func (a *Account) OwnsBadge(badgeID string) bool {
	for _, id := range a.Badges {
		if id == badgeID {
			return true
		}
	}
	return false
}

// GrantBadge adds the badge to the owned set; granting an owned badge is a no-op
func (a *Account) GrantBadge(badgeID string) {
	if a.OwnsBadge(badgeID) {
		return
	}
	a.Badges = append(a.Badges, badgeID)
}

// Clone returns a deep copy of the account
func (a *Account) Clone() *Account {
	c := *a
	c.QuizStreaks = make(map[Category]int, len(a.QuizStreaks))
	c.LastQuizDates = make(map[Category]*time.Time, len(a.LastQuizDates))
	c.TotalQuizCorrect = make(map[Category]int, len(a.TotalQuizCorrect))
	for k, v := range a.QuizStreaks {
		c.QuizStreaks[k] = v
	}
	for k, v := range a.LastQuizDates {
		if v != nil {
			t := *v
			c.LastQuizDates[k] = &t
		} else {
			c.LastQuizDates[k] = nil
		}
	}
	for k, v := range a.TotalQuizCorrect {
		c.TotalQuizCorrect[k] = v
	}
	c.Badges = append([]string(nil), a.Badges...)
	if a.LastBonusClaim != nil {
		t := *a.LastBonusClaim
		c.LastBonusClaim = &t
	}
	if a.LastLoginDate != nil {
		t := *a.LastLoginDate
		c.LastLoginDate = &t
	}
	return &c
}
