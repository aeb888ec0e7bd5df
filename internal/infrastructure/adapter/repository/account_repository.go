package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity hydrates an account entity from its model rows
func modelToEntity(m *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(m.ID, m.DisplayName, m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hydrate account: %s", errs.ErrInternalServer, err.Error())
	}
	account.SetBalance(m.Balance)
	account.LastBonusClaim = m.LastBonusClaim
	account.LoginStreak = m.LoginStreak
	account.LastLoginDate = m.LastLoginDate
	account.PerfectDays = m.PerfectDays
	account.PerfectWeeks = m.PerfectWeeks
	account.PerfectMonths = m.PerfectMonths

	for _, stat := range m.CategoryStats {
		c := entity.Category(stat.Category)
		account.QuizStreaks[c] = stat.Streak
		account.LastQuizDates[c] = stat.LastQuizDate
		account.TotalQuizCorrect[c] = stat.TotalCorrect
	}
	for _, owned := range m.Badges {
		account.GrantBadge(owned.BadgeID)
	}
	return account, nil
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
			"operation":  operation,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAccount
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account with its category stats and owned badges
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).
		Preload("CategoryStats").
		Preload("Badges").
		First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}
	return modelToEntity(&m)
}

// Create persists a new account with its category stat rows
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	now := r.timeProvider.Now()
	m := model.Account{
		ID:             account.ID,
		DisplayName:    account.DisplayName,
		Balance:        account.Balance(),
		LastBonusClaim: account.LastBonusClaim,
		LoginStreak:    account.LoginStreak,
		LastLoginDate:  account.LastLoginDate,
		PerfectDays:    account.PerfectDays,
		PerfectWeeks:   account.PerfectWeeks,
		PerfectMonths:  account.PerfectMonths,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      now,
	}
	for _, c := range entity.Categories() {
		m.CategoryStats = append(m.CategoryStats, model.AccountCategoryStat{
			AccountID:    account.ID,
			Category:     string(c),
			Streak:       account.QuizStreaks[c],
			LastQuizDate: account.LastQuizDates[c],
			TotalCorrect: account.TotalQuizCorrect[c],
		})
	}
	for _, badgeID := range account.Badges {
		m.Badges = append(m.Badges, model.AccountBadge{
			AccountID: account.ID,
			BadgeID:   badgeID,
			GrantedAt: now,
		})
	}

	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Info("Account row created", map[string]any{
		"account_id": account.ID,
		"balance":    account.Balance(),
	})
	return nil
}

// Update overwrites the mutable account state: scalar fields, category
// stat rows and newly owned badges
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance":          account.Balance(),
			"last_bonus_claim": account.LastBonusClaim,
			"login_streak":     account.LoginStreak,
			"last_login_date":  account.LastLoginDate,
			"perfect_days":     account.PerfectDays,
			"perfect_weeks":    account.PerfectWeeks,
			"perfect_months":   account.PerfectMonths,
			"updated_at":       now,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	for _, c := range entity.Categories() {
		stat := model.AccountCategoryStat{
			AccountID:    account.ID,
			Category:     string(c),
			Streak:       account.QuizStreaks[c],
			LastQuizDate: account.LastQuizDates[c],
			TotalCorrect: account.TotalQuizCorrect[c],
		}
		result := r.db.WithContext(ctx).Model(&model.AccountCategoryStat{}).
			Where("account_id = ? AND category = ?", account.ID, string(c)).
			Updates(map[string]any{
				"streak":         stat.Streak,
				"last_quiz_date": stat.LastQuizDate,
				"total_correct":  stat.TotalCorrect,
			})
		if result.Error != nil {
			return r.handleDatabaseError("updating category stats", result.Error, account.ID)
		}
		if result.RowsAffected == 0 {
			if err := r.db.WithContext(ctx).Create(&stat).Error; err != nil {
				return r.handleDatabaseError("creating category stats", err, account.ID)
			}
		}
	}

	for _, badgeID := range account.Badges {
		owned := model.AccountBadge{AccountID: account.ID, BadgeID: badgeID, GrantedAt: now}
		// Idempotent: existing grants are left alone
		err := r.db.WithContext(ctx).
			Where("account_id = ? AND badge_id = ?", account.ID, badgeID).
			FirstOrCreate(&owned).Error
		if err != nil {
			return r.handleDatabaseError("granting badge", err, account.ID)
		}
	}

	return nil
}

// ListTopByBalance returns up to limit accounts by balance descending,
// ties broken by earliest creation then id for a stable order
func (r *AccountRepository) ListTopByBalance(ctx context.Context, limit int) ([]*entity.Account, error) {
	var rows []model.Account
	result := r.db.WithContext(ctx).
		Preload("CategoryStats").
		Preload("Badges").
		Order("balance DESC, created_at ASC, id ASC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		account, err := modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
