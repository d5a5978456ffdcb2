package repo

import (
	"context"

	"github.com/vmalgo/researchlab/internal/domain/research/model"
)

type StrategyRepo interface {
	CreateStrategy(ctx context.Context, s model.Strategy) (model.Strategy, error)

	GetStrategyByID(ctx context.Context, id int64) (model.Strategy, error)

	ListStrategiesByUser(ctx context.Context, userID int64) ([]model.Strategy, error)

	DeleteStrategy(ctx context.Context, id, userID int64) error
}
