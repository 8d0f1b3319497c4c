package query

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/model/entity"
)

type rsiDataDao struct {
	db *gorm.DB
}

func NewRSIDataDao(db *gorm.DB) *rsiDataDao {
	return &rsiDataDao{db: db}
}

func (r *rsiDataDao) RSIDataCreate(ctx context.Context, data *entity.RSIData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

func (r *rsiDataDao) RSIDataGetLatest(ctx context.Context, coinPairId int64) (res entity.RSIData, err error) {
	err = r.db.WithContext(ctx).
		Where("coin_pair_id = ?", coinPairId).
		Order("timestamp desc").
		First(&res).
		Error
	return
}

func (r *rsiDataDao) RSIDataGetList(ctx context.Context, coinPairId int64, page, limit int) ([]entity.RSIData, error) {
	offset := (page - 1) * limit
	var arr []entity.RSIData
	err := r.db.WithContext(ctx).
		Where("coin_pair_id = ?", coinPairId).
		Order("timestamp desc").
		Limit(limit).
		Offset(offset).
		Find(&arr).
		Error
	return arr, err
}

// RSIDataPrune finds the keep-th newest sample and drops everything older.
func (r *rsiDataDao) RSIDataPrune(ctx context.Context, coinPairId int64, keep int) error {
	if keep <= 0 {
		return nil
	}
	var cutoff entity.RSIData
	err := r.db.WithContext(ctx).
		Where("coin_pair_id = ?", coinPairId).
		Order("timestamp desc").
		Offset(keep - 1).
		First(&cutoff).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).
		Where("coin_pair_id = ? AND timestamp < ?", coinPairId, cutoff.Timestamp).
		Delete(&entity.RSIData{}).
		Error
}
