package repository

import (
	"context"
	"fmt"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
	errs "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerRepository implements the LedgerRepository port using GORM.
// Ledger rows are insert-only; there is deliberately no update or delete
// path here.
type LedgerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{db: db, logger: logger}
}

// Append writes one immutable ledger entry
func (r *LedgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	m := model.LedgerEntry{
		ID:          entry.ID,
		AccountID:   entry.AccountID,
		Amount:      entry.Amount,
		Description: entry.Description,
		Category:    string(entry.Category),
		Direction:   string(entry.Direction),
		CreatedAt:   entry.CreatedAt,
	}
	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		r.logger.Error("Failed to append ledger entry", map[string]any{
			"account_id": entry.AccountID,
			"category":   string(entry.Category),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListRecent returns a page of the account's ledger, most recent first
func (r *LedgerRepository) ListRecent(ctx context.Context, accountID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	var rows []model.LedgerEntry
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]*entity.LedgerEntry, 0, len(rows))
	for _, m := range rows {
		entries = append(entries, &entity.LedgerEntry{
			ID:          m.ID,
			AccountID:   m.AccountID,
			Amount:      m.Amount,
			Description: m.Description,
			Category:    entity.LedgerCategory(m.Category),
			Direction:   entity.Direction(m.Direction),
			CreatedAt:   m.CreatedAt,
		})
	}
	return entries, nil
}

// SumAmounts returns the signed sum of all entries for the account
func (r *LedgerRepository) SumAmounts(ctx context.Context, accountID string) (int64, error) {
	var sum *int64
	result := r.db.WithContext(ctx).Model(&model.LedgerEntry{}).
		Where("account_id = ?", accountID).
		Select("SUM(amount)").
		Scan(&sum)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if sum == nil {
		// No entries yet
		return 0, nil
	}
	return *sum, nil
}
