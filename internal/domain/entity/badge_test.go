package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeMatchesRequirement(t *testing.T) {
	streakBadge := &Badge{
		ID:          "badge-7",
		Name:        "Consistent Learner",
		Requirement: &Requirement{Type: RequirementStreak, Category: "login", Value: 7},
	}
	purchasable := &Badge{ID: "badge-1", Name: "Bronze Collector", Price: 1000}

	t.Run("Reached value in matching category unlocks", func(t *testing.T) {
		assert.True(t, streakBadge.MatchesRequirement(RequirementStreak, "login", 7))
		assert.True(t, streakBadge.MatchesRequirement(RequirementStreak, "login", 30))
	})

	t.Run("Below value does not unlock", func(t *testing.T) {
		assert.False(t, streakBadge.MatchesRequirement(RequirementStreak, "login", 6))
	})

	t.Run("Other category does not unlock", func(t *testing.T) {
		assert.False(t, streakBadge.MatchesRequirement(RequirementStreak, "math", 7))
	})

	t.Run("Other requirement type does not unlock", func(t *testing.T) {
		assert.False(t, streakBadge.MatchesRequirement(RequirementPerfect, "login", 7))
	})

	t.Run("Badge without requirement never unlocks", func(t *testing.T) {
		assert.False(t, purchasable.MatchesRequirement(RequirementStreak, "login", 100))
	})

	t.Run("Purchasability follows price", func(t *testing.T) {
		assert.True(t, purchasable.IsPurchasable())
		assert.False(t, streakBadge.IsPurchasable())
		assert.True(t, streakBadge.IsEarnable())
		assert.False(t, purchasable.IsEarnable())
	})
}

func TestNewLedgerEntryDirection(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	credit := NewLedgerEntry("user-1", 100, "Daily login bonus (1 day streak)", LedgerBonus, now)
	assert.Equal(t, DirectionCredit, credit.Direction)
	assert.NotEmpty(t, credit.ID)

	debit := NewLedgerEntry("user-1", -40, "Purchased badge: Bronze Collector", LedgerBadge, now)
	assert.Equal(t, DirectionDebit, debit.Direction)
}

func TestRankLeaderboard(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	mk := func(id string, balance int64) *Account {
		a, err := NewAccount(id, id, now)
		require.NoError(t, err)
		require.NoError(t, a.Credit(balance))
		return a
	}

	entries := RankLeaderboard([]*Account{mk("a", 300), mk("b", 200), mk("c", 200)})

	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "a", entries[0].AccountID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "b", entries[1].AccountID)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, int64(200), entries[2].Balance)
}
