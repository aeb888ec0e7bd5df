package quiz

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	accountUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/account"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/badge"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/penalty"
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
	for _, category := range entity.Categories() {
		store.SeedQuestions(category, testQuestions(category, 5))
	}

	clock := &stubClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	log := logger.NewNoopLogger()
	penalties := penalty.NewApplier(store, clock, log)
	badges := badge.NewService(store, clock, log)
	svc := NewService(store, store.Questions(), penalties, badges, clock, log, DefaultConfig(), time.UTC)

	_, err := accountUseCase.CreateWithWelcome(context.Background(), store, "user-1", "Ada", 500, clock.now)
	require.NoError(t, err)
	return &fixture{store: store, clock: clock, svc: svc}
}

// testQuestions builds n questions whose correct answer is always option 0
func testQuestions(category entity.Category, n int) []entity.QuizQuestion {
	questions := make([]entity.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, entity.QuizQuestion{
			ID:           fmt.Sprintf("%s-%02d", category, i+1),
			Category:     category,
			Prompt:       fmt.Sprintf("Question %d", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
			Difficulty:   "easy",
			Points:       5,
		})
	}
	return questions
}

func requireLedgerMatchesBalance(t *testing.T, store *memory.Store, accountID string) {
	t.Helper()
	ctx := context.Background()
	account, err := store.Accounts(ctx).GetByID(ctx, accountID)
	require.NoError(t, err)
	sum, err := store.Ledger(ctx).SumAmounts(ctx, accountID)
	require.NoError(t, err)
	require.Equal(t, account.Balance(), sum)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial score credits per correct answer", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 1, 2})
		require.NoError(t, err)

		assert.Equal(t, 60, result.Score)
		assert.Equal(t, 3, result.CorrectAnswers)
		assert.Equal(t, int64(15), result.CoinsEarned)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(515), account.Balance())
		assert.Equal(t, 1, account.QuizStreaks[entity.CategoryMath])
		assert.Equal(t, 3, account.TotalQuizCorrect[entity.CategoryMath])

		entries, err := f.store.Ledger(ctx).ListRecent(ctx, "user-1", 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Equal(t, "math quiz: 3/5 correct", entries[0].Description)
		assert.Equal(t, entity.LedgerQuiz, entries[0].Category)

		results, err := f.store.QuizResults(ctx).ListRecent(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 60, results[0].Score)
		assert.Equal(t, []int{0, 0, 0, 1, 2}, results[0].UserAnswers)

		requireLedgerMatchesBalance(t, f.store, "user-1")
	})

	t.Run("Zero score is a valid result, not an error", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{1, 1, 1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, int64(0), result.CoinsEarned)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.QuizStreaks[entity.CategoryMath])
		requireLedgerMatchesBalance(t, f.store, "user-1")
	})

	t.Run("Only the first attempt of the day moves the streak", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)

		f.clock.now = f.clock.now.Add(2 * time.Hour)
		result, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, int64(15), result.CoinsEarned)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.QuizStreaks[entity.CategoryMath])
		assert.Equal(t, int64(500+25+15), account.Balance())
		requireLedgerMatchesBalance(t, f.store, "user-1")
	})

	t.Run("Next day advances the streak", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)

		f.clock.now = f.clock.now.Add(24 * time.Hour)
		_, err = f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 2, account.QuizStreaks[entity.CategoryMath])
	})

	t.Run("Broken streak charges the quiz penalty", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)
		f.clock.now = f.clock.now.Add(24 * time.Hour)
		_, err = f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)

		f.clock.now = f.clock.now.Add(72 * time.Hour)
		_, err = f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{1, 1, 1, 1, 1})
		require.NoError(t, err)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.QuizStreaks[entity.CategoryMath])
		// 500 + 25 + 25 earned, then a 2-day streak broken at 2 coins/day
		assert.Equal(t, int64(546), account.Balance())

		entries, err := f.store.Ledger(ctx).ListRecent(ctx, "user-1", 10, 0)
		require.NoError(t, err)
		var penaltyEntry *entity.LedgerEntry
		for _, e := range entries {
			if e.Category == entity.LedgerPenalty {
				penaltyEntry = e
			}
		}
		require.NotNil(t, penaltyEntry)
		assert.Equal(t, int64(-4), penaltyEntry.Amount)
		assert.Equal(t, "Penalty for missed daily quiz", penaltyEntry.Description)
		requireLedgerMatchesBalance(t, f.store, "user-1")
	})

	t.Run("Streaks are independent per category", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)
		_, err = f.svc.Submit(ctx, "user-1", entity.CategoryGrammar, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.QuizStreaks[entity.CategoryMath])
		assert.Equal(t, 1, account.QuizStreaks[entity.CategoryGrammar])
		assert.Equal(t, 0, account.QuizStreaks[entity.CategoryAptitude])
	})

	t.Run("Unknown account is bootstrapped with the welcome credit", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.svc.Submit(ctx, "newcomer", entity.CategoryMath, []int{0, 0, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, 100, result.Score)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "newcomer")
		require.NoError(t, err)
		assert.Equal(t, "User", account.DisplayName)
		assert.Equal(t, int64(525), account.Balance())

		entries, err := f.store.Ledger(ctx).ListRecent(ctx, "newcomer", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, accountUseCase.WelcomeDescription, entries[1].Description)
		requireLedgerMatchesBalance(t, f.store, "newcomer")
	})

	t.Run("Answer count must match the question count", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, []int{0, 0})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown category is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Submit(ctx, "user-1", entity.Category("history"), []int{0})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Empty question set surfaces as not found", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedQuestions(entity.CategoryAptitude, nil)
		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryAptitude, nil)
		assert.ErrorIs(t, err, errs.ErrQuestionsNotFound)
	})
}

func TestPerfectDay(t *testing.T) {
	ctx := context.Background()
	perfect := []int{0, 0, 0, 0, 0}
	flawed := []int{0, 0, 0, 0, 1}

	t.Run("All four categories perfect counts one perfect day", func(t *testing.T) {
		f := newFixture(t)

		for _, category := range entity.Categories() {
			_, err := f.svc.Submit(ctx, "user-1", category, perfect)
			require.NoError(t, err)
		}

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.PerfectDays)
	})

	t.Run("One imperfect category keeps the counter at zero", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, flawed)
		require.NoError(t, err)
		for _, category := range entity.Categories()[1:] {
			_, err := f.svc.Submit(ctx, "user-1", category, perfect)
			require.NoError(t, err)
		}

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 0, account.PerfectDays)
	})

	t.Run("Repeating a perfect score never double-counts the day", func(t *testing.T) {
		f := newFixture(t)

		for _, category := range entity.Categories() {
			_, err := f.svc.Submit(ctx, "user-1", category, perfect)
			require.NoError(t, err)
		}
		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, perfect)
		require.NoError(t, err)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.PerfectDays)
	})

	t.Run("A late perfect retry completes the day", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, "user-1", entity.CategoryMath, flawed)
		require.NoError(t, err)
		for _, category := range entity.Categories()[1:] {
			_, err := f.svc.Submit(ctx, "user-1", category, perfect)
			require.NoError(t, err)
		}
		_, err = f.svc.Submit(ctx, "user-1", entity.CategoryMath, perfect)
		require.NoError(t, err)

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, account.PerfectDays)
	})

	t.Run("Perfect badge is granted when the counter reaches the requirement", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedBadges(&entity.Badge{
			ID:          "badge-14",
			Name:        "Perfectionist",
			Requirement: &entity.Requirement{Type: entity.RequirementPerfect, Category: "daily", Value: 1},
		})

		for _, category := range entity.Categories() {
			_, err := f.svc.Submit(ctx, "user-1", category, perfect)
			require.NoError(t, err)
		}

		account, err := f.store.Accounts(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, account.OwnsBadge("badge-14"))
	})
}

func TestQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the category's question set", func(t *testing.T) {
		f := newFixture(t)
		questions, err := f.svc.Questions(ctx, entity.CategoryMath)
		require.NoError(t, err)
		assert.Len(t, questions, 5)
	})

	t.Run("Unknown category is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Questions(ctx, entity.Category("history"))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
