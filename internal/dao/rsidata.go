package dao

import (
	"context"

	"rsiboard/internal/model/entity"
)

type RSIDataDao interface {
	RSIDataCreate(ctx context.Context, data *entity.RSIData) error
	// RSIDataGetLatest returns the newest sample for a pair
	RSIDataGetLatest(ctx context.Context, coinPairId int64) (entity.RSIData, error)
	// RSIDataGetList pages newest-first
	RSIDataGetList(ctx context.Context, coinPairId int64, page, limit int) ([]entity.RSIData, error)
	// RSIDataPrune drops samples beyond the newest keep rows for a pair
	RSIDataPrune(ctx context.Context, coinPairId int64, keep int) error
}
