package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
)

var errNoTransaction = errors.New("no transaction found in context")

type accountRepo struct {
	store *Store
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	a, ok := st.accounts[id]
	if !ok {
		return nil, errs.ErrAccountNotFound
	}
	return a.Clone(), nil
}

func (r *accountRepo) Create(ctx context.Context, account *entity.Account) error {
	st, release := r.store.resolve(ctx)
	defer release()
	if _, ok := st.accounts[account.ID]; ok {
		return errs.ErrDuplicateAccount
	}
	st.accounts[account.ID] = account.Clone()
	return nil
}

func (r *accountRepo) Update(ctx context.Context, account *entity.Account) error {
	st, release := r.store.resolve(ctx)
	defer release()
	if _, ok := st.accounts[account.ID]; !ok {
		return errs.ErrAccountNotFound
	}
	st.accounts[account.ID] = account.Clone()
	return nil
}

func (r *accountRepo) ListTopByBalance(ctx context.Context, limit int) ([]*entity.Account, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	all := make([]*entity.Account, 0, len(st.accounts))
	for _, a := range st.accounts {
		all = append(all, a.Clone())
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Balance() != all[j].Balance() {
			return all[i].Balance() > all[j].Balance()
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type ledgerRepo struct {
	store *Store
}

func (r *ledgerRepo) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	st, release := r.store.resolve(ctx)
	defer release()
	e := *entry
	st.ledger[entry.AccountID] = append(st.ledger[entry.AccountID], &e)
	return nil
}

func (r *ledgerRepo) ListRecent(ctx context.Context, accountID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	entries := st.ledger[accountID]
	out := make([]*entity.LedgerEntry, 0, limit)
	// entries are stored oldest first
	for i := len(entries) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		e := *entries[i]
		out = append(out, &e)
	}
	return out, nil
}

func (r *ledgerRepo) SumAmounts(ctx context.Context, accountID string) (int64, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	var sum int64
	for _, e := range st.ledger[accountID] {
		sum += e.Amount
	}
	return sum, nil
}

type notificationRepo struct {
	store *Store
}

func (r *notificationRepo) Append(ctx context.Context, notification *entity.Notification) error {
	st, release := r.store.resolve(ctx)
	defer release()
	n := *notification
	st.notifications[notification.AccountID] = append(st.notifications[notification.AccountID], &n)
	return nil
}

func (r *notificationRepo) ListRecent(ctx context.Context, accountID string, limit int) ([]*entity.Notification, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	all := st.notifications[accountID]
	out := make([]*entity.Notification, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		n := *all[i]
		out = append(out, &n)
	}
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, accountID, notificationID string) error {
	st, release := r.store.resolve(ctx)
	defer release()
	for i, n := range st.notifications[accountID] {
		if n.ID == notificationID {
			marked := *n
			marked.Read = true
			st.notifications[accountID][i] = &marked
			return nil
		}
	}
	return errs.ErrNotFound
}

type quizResultRepo struct {
	store *Store
}

func (r *quizResultRepo) Create(ctx context.Context, result *entity.QuizResult) error {
	st, release := r.store.resolve(ctx)
	defer release()
	qr := *result
	st.quizResults[result.AccountID] = append(st.quizResults[result.AccountID], &qr)
	return nil
}

func (r *quizResultRepo) HasPerfectScoreSince(ctx context.Context, accountID string, category entity.Category, since time.Time) (bool, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	for _, qr := range st.quizResults[accountID] {
		if qr.Category == category && qr.Score == 100 && !qr.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *quizResultRepo) ListRecent(ctx context.Context, accountID string, limit int) ([]*entity.QuizResult, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	all := st.quizResults[accountID]
	out := make([]*entity.QuizResult, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		qr := *all[i]
		out = append(out, &qr)
	}
	return out, nil
}

type badgeRepo struct {
	store *Store
}

func (r *badgeRepo) GetByID(ctx context.Context, id string) (*entity.Badge, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	b, ok := st.badges[id]
	if !ok {
		return nil, errs.ErrBadgeNotFound
	}
	return b, nil
}

func (r *badgeRepo) ListAll(ctx context.Context) ([]*entity.Badge, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	out := make([]*entity.Badge, 0, len(st.badgeOrder))
	for _, id := range st.badgeOrder {
		out = append(out, st.badges[id])
	}
	return out, nil
}

type questionRepo struct {
	store *Store
}

func (r *questionRepo) FetchQuestions(ctx context.Context, category entity.Category) ([]entity.QuizQuestion, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	qs, ok := st.questions[category]
	if !ok || len(qs) == 0 {
		return nil, errs.ErrQuestionsNotFound
	}
	return append([]entity.QuizQuestion(nil), qs...), nil
}

type snapshotRepo struct {
	store *Store
}

func (r *snapshotRepo) GetSnapshot(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	st, release := r.store.resolve(ctx)
	defer release()
	return append([]entity.LeaderboardEntry(nil), st.snapshot...), nil
}

func (r *snapshotRepo) SaveSnapshot(ctx context.Context, entries []entity.LeaderboardEntry) error {
	st, release := r.store.resolve(ctx)
	defer release()
	st.snapshot = append([]entity.LeaderboardEntry(nil), entries...)
	return nil
}
