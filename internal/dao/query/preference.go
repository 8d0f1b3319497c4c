package query

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
)

type preferenceDao struct {
	db *gorm.DB
}

func NewPreferenceDao(db *gorm.DB) *preferenceDao {
	return &preferenceDao{db: db}
}

func (p *preferenceDao) PreferenceCreate(ctx context.Context, pref *entity.UserCoinPreference) error {
	return p.db.WithContext(ctx).Create(pref).Error
}

func (p *preferenceDao) PreferenceUpdate(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return p.db.WithContext(ctx).Model(&entity.UserCoinPreference{}).Where("id = ?", id).Updates(fields).Error
}

func (p *preferenceDao) PreferenceGetById(ctx context.Context, id int64) (res entity.UserCoinPreference, err error) {
	err = p.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return
}

func (p *preferenceDao) PreferenceGetListByUser(ctx context.Context, userId int64) ([]model.PreferenceRow, error) {
	var arr []model.PreferenceRow
	err := p.db.WithContext(ctx).
		Model(&entity.UserCoinPreference{}).
		Select("user_coin_preferences.id, user_coin_preferences.user_id, user_coin_preferences.coin_pair_id, coin_pairs.symbol, user_coin_preferences.is_selected, user_coin_preferences.display_order, user_coin_preferences.created_at").
		Joins("JOIN coin_pairs ON coin_pairs.id = user_coin_preferences.coin_pair_id").
		Where("user_coin_preferences.user_id = ?", userId).
		Order("user_coin_preferences.display_order").
		Scan(&arr).
		Error
	return arr, err
}

func (p *preferenceDao) PreferenceDelete(ctx context.Context, id int64) error {
	return p.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.UserCoinPreference{}).Error
}
