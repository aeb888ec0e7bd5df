package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	accountUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/account"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/logger"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time                  { return c.now }
func (c *stubClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *stubClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

type fixture struct {
	store *memory.Store
	clock *stubClock
	svc   *Service
}

func newFixture(t *testing.T, size int) *fixture {
	t.Helper()
	store := memory.NewStore()
	clock := &stubClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	ctx := context.Background()
	svc := NewService(store.Accounts(ctx), store.Snapshots(), store.Notifications(ctx), clock, logger.NewNoopLogger(), size)
	return &fixture{store: store, clock: clock, svc: svc}
}

// seedAccount creates an account with the given balance. Creation times are
// staggered so the created_at tie-break is deterministic.
func (f *fixture) seedAccount(t *testing.T, id string, balance int64) {
	t.Helper()
	_, err := accountUseCase.CreateWithWelcome(context.Background(), f.store, id, "Player "+id, balance, f.clock.now)
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(time.Minute)
}

func (f *fixture) setBalance(t *testing.T, id string, balance int64) {
	t.Helper()
	ctx := context.Background()
	account, err := f.store.Accounts(ctx).GetByID(ctx, id)
	require.NoError(t, err)
	account.SetBalance(balance)
	require.NoError(t, f.store.Accounts(ctx).Update(ctx, account))
}

func TestTop(t *testing.T) {
	ctx := context.Background()

	t.Run("Ranks by balance descending", func(t *testing.T) {
		f := newFixture(t, 10)
		f.seedAccount(t, "low", 100)
		f.seedAccount(t, "high", 900)
		f.seedAccount(t, "mid", 500)

		entries, err := f.svc.Top(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "high", entries[0].AccountID)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "mid", entries[1].AccountID)
		assert.Equal(t, "low", entries[2].AccountID)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("Ties go to the older account", func(t *testing.T) {
		f := newFixture(t, 10)
		f.seedAccount(t, "older", 500)
		f.seedAccount(t, "newer", 500)

		entries, err := f.svc.Top(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "older", entries[0].AccountID)
		assert.Equal(t, "newer", entries[1].AccountID)
	})

	t.Run("Truncates to the configured size", func(t *testing.T) {
		f := newFixture(t, 2)
		f.seedAccount(t, "a", 300)
		f.seedAccount(t, "b", 200)
		f.seedAccount(t, "c", 100)

		entries, err := f.svc.Top(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "a", entries[0].AccountID)
		assert.Equal(t, "b", entries[1].AccountID)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("First refresh stores the snapshot without notifying anyone", func(t *testing.T) {
		f := newFixture(t, 10)
		f.seedAccount(t, "a", 900)
		f.seedAccount(t, "b", 100)

		require.NoError(t, f.svc.Refresh(ctx))

		snapshot, err := f.store.Snapshots().GetSnapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot, 2)
		assert.Equal(t, "a", snapshot[0].AccountID)
		assert.Equal(t, 1, snapshot[0].Rank)

		for _, id := range []string{"a", "b"} {
			notifications, err := f.store.Notifications(ctx).ListRecent(ctx, id, 10)
			require.NoError(t, err)
			assert.Empty(t, notifications)
		}
	})

	t.Run("A rank swap notifies both accounts", func(t *testing.T) {
		f := newFixture(t, 10)
		f.seedAccount(t, "a", 900)
		f.seedAccount(t, "b", 100)
		require.NoError(t, f.svc.Refresh(ctx))

		f.setBalance(t, "b", 2000)
		require.NoError(t, f.svc.Refresh(ctx))

		bNotifications, err := f.store.Notifications(ctx).ListRecent(ctx, "b", 10)
		require.NoError(t, err)
		require.Len(t, bNotifications, 1)
		assert.Equal(t, "Leaderboard Update!", bNotifications[0].Title)
		assert.Equal(t, "You moved from rank 2 to rank 1!", bNotifications[0].Message)
		assert.Equal(t, entity.NotificationLeaderboard, bNotifications[0].Type)

		aNotifications, err := f.store.Notifications(ctx).ListRecent(ctx, "a", 10)
		require.NoError(t, err)
		require.Len(t, aNotifications, 1)
		assert.Equal(t, "You moved from rank 1 to rank 2!", aNotifications[0].Message)
	})

	t.Run("Unchanged ranks are not re-notified", func(t *testing.T) {
		f := newFixture(t, 10)
		f.seedAccount(t, "a", 900)
		f.seedAccount(t, "b", 100)
		require.NoError(t, f.svc.Refresh(ctx))
		require.NoError(t, f.svc.Refresh(ctx))

		notifications, err := f.store.Notifications(ctx).ListRecent(ctx, "a", 10)
		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("New entrants are not notified", func(t *testing.T) {
		f := newFixture(t, 10)
		f.seedAccount(t, "a", 900)
		require.NoError(t, f.svc.Refresh(ctx))

		f.seedAccount(t, "b", 2000)
		require.NoError(t, f.svc.Refresh(ctx))

		// b entered at rank 1 with no previous rank
		bNotifications, err := f.store.Notifications(ctx).ListRecent(ctx, "b", 10)
		require.NoError(t, err)
		assert.Empty(t, bNotifications)

		// a was pushed from 1 to 2 and is notified
		aNotifications, err := f.store.Notifications(ctx).ListRecent(ctx, "a", 10)
		require.NoError(t, err)
		require.Len(t, aNotifications, 1)
		assert.Equal(t, "You moved from rank 1 to rank 2!", aNotifications[0].Message)
	})
}
