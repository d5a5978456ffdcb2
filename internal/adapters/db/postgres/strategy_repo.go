package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
	"github.com/vmalgo/researchlab/internal/domain/research/model"
)

type StrategyRepo struct {
	db *gorm.DB
}

func NewStrategyRepo(db *gorm.DB) *StrategyRepo {
	return &StrategyRepo{db: db}
}

func (p *StrategyRepo) CreateStrategy(ctx context.Context, s model.Strategy) (model.Strategy, error) {
	res := p.db.WithContext(ctx).Create(&s)
	if err := res.Error; err != nil {
		return model.Strategy{}, customErrors.WrapUnavailable(err, "CreateStrategy")
	}
	return s, nil
}

func (p *StrategyRepo) GetStrategyByID(ctx context.Context, id int64) (model.Strategy, error) {
	var s model.Strategy
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&s)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Strategy{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Strategy{}, customErrors.WrapUnavailable(err, "GetStrategyByID")
	}
	return s, nil
}

func (p *StrategyRepo) ListStrategiesByUser(ctx context.Context, userID int64) ([]model.Strategy, error) {
	var out []model.Strategy
	res := p.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&out)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapUnavailable(err, "ListStrategiesByUser")
	}
	return out, nil
}

func (p *StrategyRepo) DeleteStrategy(ctx context.Context, id, userID int64) error {
	res := p.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Strategy{})
	if err := res.Error; err != nil {
		return customErrors.WrapUnavailable(err, "DeleteStrategy")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}
