package account

import (
	"context"
	"testing"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
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

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	clock := &stubClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewService(store, clock, logger.NewNoopLogger(), 500)
	return &fixture{store: store, clock: clock, svc: svc}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits the welcome bonus with its ledger entry", func(t *testing.T) {
		f := newFixture(t)

		account, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)
		assert.Equal(t, int64(500), account.Balance())
		assert.Equal(t, "Ada", account.DisplayName)
		assert.Equal(t, 0, account.LoginStreak)
		assert.Nil(t, account.LastBonusClaim)

		entries, err := f.store.Ledger(ctx).ListRecent(ctx, "user-1", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(500), entries[0].Amount)
		assert.Equal(t, WelcomeDescription, entries[0].Description)
		assert.Equal(t, entity.LedgerWelcome, entries[0].Category)
		assert.Equal(t, entity.DirectionCredit, entries[0].Direction)
	})

	t.Run("Duplicate id is rejected without a second credit", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)
		_, err = f.svc.Signup(ctx, "user-1", "Impostor")
		assert.ErrorIs(t, err, errs.ErrDuplicateAccount)

		account, err := f.svc.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", account.DisplayName)
		assert.Equal(t, int64(500), account.Balance())

		entries, err := f.store.Ledger(ctx).ListRecent(ctx, "user-1", 10, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Empty display name is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Signup(ctx, "user-1", "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Empty id is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Signup(ctx, "", "Ada")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("Pages most recent first", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			entry := entity.NewLedgerEntry("user-1", int64(i+1), "credit", entity.LedgerBonus, f.clock.now)
			require.NoError(t, f.store.Ledger(ctx).Append(ctx, entry))
		}

		page, err := f.svc.Ledger(ctx, "user-1", 2, 0)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, int64(3), page[0].Amount)
		assert.Equal(t, int64(2), page[1].Amount)

		rest, err := f.svc.Ledger(ctx, "user-1", 10, 2)
		require.NoError(t, err)
		require.Len(t, rest, 2)
		assert.Equal(t, int64(1), rest[0].Amount)
		assert.Equal(t, WelcomeDescription, rest[1].Description)
	})

	t.Run("Unknown account", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Ledger(ctx, "ghost", 10, 0)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("Mark read flips only the targeted notification", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)

		first := entity.NewNotification("user-1", "One", "first", entity.NotificationReminder, f.clock.now)
		second := entity.NewNotification("user-1", "Two", "second", entity.NotificationReminder, f.clock.now)
		require.NoError(t, f.store.Notifications(ctx).Append(ctx, first))
		require.NoError(t, f.store.Notifications(ctx).Append(ctx, second))

		require.NoError(t, f.svc.MarkNotificationRead(ctx, "user-1", first.ID))

		notifications, err := f.svc.Notifications(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, notifications, 2)
		for _, n := range notifications {
			assert.Equal(t, n.ID == first.ID, n.Read)
		}
	})

	t.Run("Marking an unknown notification fails", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)
		err = f.svc.MarkNotificationRead(ctx, "user-1", "missing")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Decorates badges with owned and affordable flags", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedBadges(
			&entity.Badge{ID: "badge-1", Name: "Bronze Supporter", Price: 400},
			&entity.Badge{ID: "badge-2", Name: "Silver Supporter", Price: 2000},
			&entity.Badge{
				ID:          "badge-7",
				Name:        "Week Warrior",
				Requirement: &entity.Requirement{Type: entity.RequirementStreak, Category: "login", Value: 7},
			},
		)
		account, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)
		account.GrantBadge("badge-7")
		require.NoError(t, f.store.Accounts(ctx).Update(ctx, account))

		items, err := f.svc.Catalog(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, items, 3)

		byID := make(map[string]CatalogItem, len(items))
		for _, item := range items {
			byID[item.Badge.ID] = item
		}

		assert.True(t, byID["badge-1"].Affordable) // 400 <= 500
		assert.False(t, byID["badge-1"].Owned)
		assert.False(t, byID["badge-2"].Affordable)
		assert.True(t, byID["badge-7"].Owned)
		// Earn-only badges are never affordable
		assert.False(t, byID["badge-7"].Affordable)
	})

	t.Run("Unknown account", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Catalog(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestVerifyLedgerBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Consistent after signup", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)

		ok, err := f.svc.VerifyLedgerBalance(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Detects a balance without a matching entry", func(t *testing.T) {
		f := newFixture(t)
		account, err := f.svc.Signup(ctx, "user-1", "Ada")
		require.NoError(t, err)

		account.SetBalance(9999)
		require.NoError(t, f.store.Accounts(ctx).Update(ctx, account))

		ok, err := f.svc.VerifyLedgerBalance(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
