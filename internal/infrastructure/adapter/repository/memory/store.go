// Package memory provides an in-memory implementation of all persistence
// ports, including transactional unit-of-work semantics: Begin snapshots
// the whole store, repositories bound to the transactional context mutate
// the snapshot, and Commit swaps it in atomically. Used by use case tests
// in place of the database adapters.
package memory

import (
	"context"
	"sync"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
)

// state is one complete copy of the store's data
type state struct {
	accounts      map[string]*entity.Account
	ledger        map[string][]*entity.LedgerEntry
	notifications map[string][]*entity.Notification
	quizResults   map[string][]*entity.QuizResult
	badges        map[string]*entity.Badge
	badgeOrder    []string
	questions     map[entity.Category][]entity.QuizQuestion
	snapshot      []entity.LeaderboardEntry
}

func newState() *state {
	return &state{
		accounts:      make(map[string]*entity.Account),
		ledger:        make(map[string][]*entity.LedgerEntry),
		notifications: make(map[string][]*entity.Notification),
		quizResults:   make(map[string][]*entity.QuizResult),
		badges:        make(map[string]*entity.Badge),
		questions:     make(map[entity.Category][]entity.QuizQuestion),
	}
}

// clone deep-copies accounts and copies the append-only collections.
// Ledger entries, notifications and quiz results are never mutated after
// insertion, so sharing the element pointers across copies is safe.
func (s *state) clone() *state {
	c := newState()
	for id, a := range s.accounts {
		c.accounts[id] = a.Clone()
	}
	for id, entries := range s.ledger {
		c.ledger[id] = append([]*entity.LedgerEntry(nil), entries...)
	}
	for id, ns := range s.notifications {
		c.notifications[id] = append([]*entity.Notification(nil), ns...)
	}
	for id, rs := range s.quizResults {
		c.quizResults[id] = append([]*entity.QuizResult(nil), rs...)
	}
	for id, b := range s.badges {
		c.badges[id] = b
	}
	c.badgeOrder = append([]string(nil), s.badgeOrder...)
	for cat, qs := range s.questions {
		c.questions[cat] = append([]entity.QuizQuestion(nil), qs...)
	}
	c.snapshot = append([]entity.LeaderboardEntry(nil), s.snapshot...)
	return c
}

type txKeyType struct{}

var txKey txKeyType

type transaction struct {
	st *state
}

// Store is the in-memory database. It implements persistence.UnitOfWork
// and hands out repository views over either the live state or, when the
// context carries a transaction, the transaction's private copy.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{st: newState()}
}

// Begin snapshots the store into a transaction carried by the returned context
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return context.WithValue(ctx, txKey, &transaction{st: s.st.clone()}), nil
}

// Commit swaps the transaction's state in as the live state
func (s *Store) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*transaction)
	if !ok || tx == nil || tx.st == nil {
		return errNoTransaction
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = tx.st
	tx.st = nil
	return nil
}

// Rollback discards the transaction's state. Rolling back after a commit
// is a no-op, matching the deferred-cleanup usage in the use cases.
func (s *Store) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*transaction)
	if !ok || tx == nil {
		return errNoTransaction
	}
	tx.st = nil
	return nil
}

// resolve returns the state the context is bound to and a release func.
// Transactional state is private to its goroutine and needs no locking.
func (s *Store) resolve(ctx context.Context) (*state, func()) {
	if tx, ok := ctx.Value(txKey).(*transaction); ok && tx.st != nil {
		return tx.st, func() {}
	}
	s.mu.Lock()
	return s.st, s.mu.Unlock
}

// Accounts returns an account repository bound to the context's transaction
func (s *Store) Accounts(ctx context.Context) persistence.AccountRepository {
	return &accountRepo{store: s}
}

// Ledger returns a ledger repository bound to the context's transaction
func (s *Store) Ledger(ctx context.Context) persistence.LedgerRepository {
	return &ledgerRepo{store: s}
}

// Notifications returns a notification repository bound to the context's transaction
func (s *Store) Notifications(ctx context.Context) persistence.NotificationRepository {
	return &notificationRepo{store: s}
}

// QuizResults returns a quiz result repository bound to the context's transaction
func (s *Store) QuizResults(ctx context.Context) persistence.QuizResultRepository {
	return &quizResultRepo{store: s}
}

// Badges returns a badge catalog repository bound to the context's transaction
func (s *Store) Badges(ctx context.Context) persistence.BadgeRepository {
	return &badgeRepo{store: s}
}

// Questions returns the question catalog repository
func (s *Store) Questions() persistence.QuestionRepository {
	return &questionRepo{store: s}
}

// Snapshots returns the leaderboard snapshot repository
func (s *Store) Snapshots() persistence.LeaderboardRepository {
	return &snapshotRepo{store: s}
}

// SeedBadges loads badges into the catalog, keeping insertion order
func (s *Store) SeedBadges(badges ...*entity.Badge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range badges {
		if _, ok := s.st.badges[b.ID]; !ok {
			s.st.badgeOrder = append(s.st.badgeOrder, b.ID)
		}
		s.st.badges[b.ID] = b
	}
}

// SeedQuestions loads a category's question set
func (s *Store) SeedQuestions(category entity.Category, questions []entity.QuizQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.questions[category] = append([]entity.QuizQuestion(nil), questions...)
}
