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

// BadgeRepository implements the BadgeRepository port using GORM. The
// catalog is read-only here; rows come from the migration seed.
type BadgeRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBadgeRepository creates a new BadgeRepository instance
func NewBadgeRepository(db *gorm.DB, logger coreport.Logger) *BadgeRepository {
	return &BadgeRepository{db: db, logger: logger}
}

func badgeModelToEntity(m *model.Badge) *entity.Badge {
	badge := &entity.Badge{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Icon:        m.Icon,
		Color:       m.Color,
	}
	if m.RequirementType != "" {
		badge.Requirement = &entity.Requirement{
			Type:     entity.RequirementType(m.RequirementType),
			Category: m.RequirementCategory,
			Value:    m.RequirementValue,
		}
	}
	return badge
}

// GetByID retrieves one badge from the catalog
func (r *BadgeRepository) GetByID(ctx context.Context, id string) (*entity.Badge, error) {
	var m model.Badge
	if result := r.db.WithContext(ctx).First(&m, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Badge not found", map[string]any{"badge_id": id})
			return nil, errs.ErrBadgeNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return badgeModelToEntity(&m), nil
}

// ListAll returns the whole badge catalog
func (r *BadgeRepository) ListAll(ctx context.Context) ([]*entity.Badge, error) {
	var rows []model.Badge
	if result := r.db.WithContext(ctx).Order("id ASC").Find(&rows); result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	badges := make([]*entity.Badge, 0, len(rows))
	for i := range rows {
		badges = append(badges, badgeModelToEntity(&rows[i]))
	}
	return badges, nil
}
