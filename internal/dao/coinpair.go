package dao

import (
	"context"

	"rsiboard/internal/model/entity"
)

type CoinPairDao interface {
	// CoinPairCreate inserts a pair; unique symbol violations surface as
	// gorm.ErrDuplicatedKey
	CoinPairCreate(ctx context.Context, pair *entity.CoinPair) error
	// CoinPairUpdate touches only the given columns
	CoinPairUpdate(ctx context.Context, id int64, fields map[string]interface{}) error
	CoinPairGetById(ctx context.Context, id int64) (entity.CoinPair, error)
	CoinPairGetBySymbol(ctx context.Context, symbol string) (entity.CoinPair, error)
	CoinPairGetList(ctx context.Context, page, limit int) ([]entity.CoinPair, int64, error)
}
