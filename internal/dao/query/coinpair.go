package query

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/model/entity"
)

type coinPairDao struct {
	db *gorm.DB
}

func NewCoinPairDao(db *gorm.DB) *coinPairDao {
	return &coinPairDao{db: db}
}

func (c *coinPairDao) CoinPairCreate(ctx context.Context, pair *entity.CoinPair) error {
	return c.db.WithContext(ctx).Create(pair).Error
}

func (c *coinPairDao) CoinPairUpdate(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).Model(&entity.CoinPair{}).Where("id = ?", id).Updates(fields).Error
}

func (c *coinPairDao) CoinPairGetById(ctx context.Context, id int64) (res entity.CoinPair, err error) {
	err = c.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return
}

func (c *coinPairDao) CoinPairGetBySymbol(ctx context.Context, symbol string) (res entity.CoinPair, err error) {
	err = c.db.WithContext(ctx).Where("symbol = ?", symbol).First(&res).Error
	return
}

func (c *coinPairDao) CoinPairGetList(ctx context.Context, page, limit int) ([]entity.CoinPair, int64, error) {
	var arr []entity.CoinPair
	var total int64
	q := c.db.WithContext(ctx).Model(&entity.CoinPair{}).Where("is_active = ?", true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := q.Order("symbol").
		Limit(limit).
		Offset(offset).
		Find(&arr).
		Error
	return arr, total, err
}
