package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/domain/port/persistence"
	accountUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/account"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/badge"
	"github.com/vitacoin/rewards-engine/internal/domain/usecase/penalty"
)

// Config holds the quiz reward tunables
type Config struct {
	CoinsPerCorrect int64 // coins credited per correct answer
	PenaltyPerDay   int64 // coins charged per day of a broken quiz streak
	WelcomeCredit   int64 // onboarding credit for the bootstrap fallback
}

// DefaultConfig returns the production quiz rules: 5 coins per correct
// answer, 2 coins penalty per broken-streak day, 500 coins onboarding.
func DefaultConfig() Config {
	return Config{CoinsPerCorrect: 5, PenaltyPerDay: 2, WelcomeCredit: 500}
}

// Service grades submitted quizzes, credits coins, maintains the four
// per-category quiz streaks and detects perfect days. A low score is never
// an error; only structural failures (missing questions, store errors)
// surface to the caller.
type Service struct {
	uow          persistence.UnitOfWork
	questions    persistence.QuestionRepository
	penalties    *penalty.Applier
	badges       *badge.Service
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
	dayLoc       *time.Location
}

// NewService creates a quiz scoring service
func NewService(
	uow persistence.UnitOfWork,
	questions persistence.QuestionRepository,
	penalties *penalty.Applier,
	badges *badge.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
	dayLoc *time.Location,
) *Service {
	return &Service{
		uow:          uow,
		questions:    questions,
		penalties:    penalties,
		badges:       badges,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		dayLoc:       dayLoc,
	}
}

// Result reports a graded submission back to the caller
type Result struct {
	Score          int
	CoinsEarned    int64
	CorrectAnswers int
}

// Questions returns the category's question set for presentation
func (s *Service) Questions(ctx context.Context, category entity.Category) ([]entity.QuizQuestion, error) {
	if !entity.IsValidCategory(category) {
		return nil, errs.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}
	return s.questions.FetchQuestions(ctx, category)
}

// submissionState carries the commit outcome needed for post-commit badge checks
type submissionState struct {
	result            *Result
	streakUpdated     bool
	newStreak         int
	perfectDays       int
	perfectDayCounted bool
}

// Submit grades the user's answers against the category's question set and
// commits balance credit, streak updates, the quiz ledger entry and the
// immutable result record atomically. Multiple attempts per day are
// allowed; only the first attempt of a calendar day advances or penalizes
// the category streak, later attempts leave the streak fields untouched
// but still credit coins.
//
// Possible errors: ErrQuestionsNotFound, ErrValidation.
func (s *Service) Submit(ctx context.Context, accountID string, category entity.Category, answers []int) (*Result, error) {
	if !entity.IsValidCategory(category) {
		return nil, errs.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}

	questions, err := s.questions.FetchQuestions(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errs.ErrQuestionsNotFound
	}
	if len(answers) != len(questions) {
		return nil, errs.NewValidationError("answers",
			fmt.Sprintf("got %d answers for %d questions", len(answers), len(questions)))
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.submit(txCtx, accountID, category, questions, answers)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed after quiz submission error", map[string]any{
				"account_id": accountID,
				"category":   string(category),
				"error":      rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz submitted", map[string]any{
		"account_id": accountID,
		"category":   string(category),
		"score":      state.result.Score,
		"coins":      state.result.CoinsEarned,
		"correct":    state.result.CorrectAnswers,
	})

	// Best-effort follow-ups; failures are logged inside and never undo the submission
	if state.streakUpdated {
		s.badges.CheckAndAward(ctx, accountID, entity.RequirementStreak, state.newStreak, string(category))
	}
	if state.perfectDayCounted {
		s.badges.CheckAndAward(ctx, accountID, entity.RequirementPerfect, state.perfectDays, "daily")
	}

	return state.result, nil
}

func (s *Service) submit(txCtx context.Context, accountID string, category entity.Category, questions []entity.QuizQuestion, answers []int) (*submissionState, error) {
	now := s.timeProvider.Now()

	account, err := s.uow.Accounts(txCtx).GetByID(txCtx, accountID)
	if err != nil {
		if !errors.Is(err, errs.ErrAccountNotFound) {
			return nil, err
		}
		// First action raced ahead of the signup flow; bootstrap with the
		// same onboarding defaults, in this commit
		account, err = accountUseCase.CreateWithWelcome(txCtx, s.uow, accountID, "User", s.cfg.WelcomeCredit, now)
		if err != nil {
			return nil, err
		}
		s.logger.Warn("Account bootstrapped during quiz submission", map[string]any{
			"account_id": accountID,
		})
	}

	correct, score := entity.GradeQuiz(questions, answers)
	coins := int64(correct) * s.cfg.CoinsPerCorrect

	state := &submissionState{
		result: &Result{Score: score, CoinsEarned: coins, CorrectAnswers: correct},
	}

	lastQuizDate := account.LastQuizDates[category]
	firstAttemptToday := lastQuizDate == nil || !entity.SameCalendarDay(*lastQuizDate, now, s.dayLoc)
	if firstAttemptToday {
		streak := entity.ComputeStreak(lastQuizDate, now, account.QuizStreaks[category], s.dayLoc)
		if streak.PenaltyDue {
			if _, err := s.penalties.Apply(txCtx, account, penalty.KindMissedQuiz,
				int64(account.QuizStreaks[category])*s.cfg.PenaltyPerDay); err != nil {
				return nil, err
			}
		}
		account.QuizStreaks[category] = streak.NewStreak
		account.LastQuizDates[category] = &now
		state.streakUpdated = true
		state.newStreak = streak.NewStreak
	}

	if err := account.Credit(coins); err != nil {
		return nil, err
	}
	account.TotalQuizCorrect[category] += correct

	if score == 100 {
		counted, err := s.countPerfectDay(txCtx, account, category, now)
		if err != nil {
			return nil, err
		}
		state.perfectDayCounted = counted
		state.perfectDays = account.PerfectDays
	}

	entry := entity.NewLedgerEntry(accountID, coins,
		fmt.Sprintf("%s quiz: %d/%d correct", category, correct, len(questions)), entity.LedgerQuiz, now)
	if err := s.uow.Ledger(txCtx).Append(txCtx, entry); err != nil {
		return nil, err
	}

	result := entity.NewQuizResult(accountID, category, questions, answers, correct, score, coins, now)
	if err := s.uow.QuizResults(txCtx).Create(txCtx, result); err != nil {
		return nil, err
	}

	if err := s.uow.Accounts(txCtx).Update(txCtx, account); err != nil {
		return nil, err
	}

	return state, nil
}

// countPerfectDay increments the perfect-day counter when this 100%
// submission completes all four categories for today. The current category
// counts through the submission itself; if it already had a 100% today the
// day was counted then, so a repeat never double-increments.
func (s *Service) countPerfectDay(txCtx context.Context, account *entity.Account, category entity.Category, now time.Time) (bool, error) {
	since := entity.StartOfDay(now, s.dayLoc)
	results := s.uow.QuizResults(txCtx)

	alreadyPerfect, err := results.HasPerfectScoreSince(txCtx, account.ID, category, since)
	if err != nil {
		return false, err
	}
	if alreadyPerfect {
		return false, nil
	}

	for _, other := range entity.Categories() {
		if other == category {
			continue
		}
		perfect, err := results.HasPerfectScoreSince(txCtx, account.ID, other, since)
		if err != nil {
			return false, err
		}
		if !perfect {
			return false, nil
		}
	}

	account.PerfectDays++
	return true, nil
}
