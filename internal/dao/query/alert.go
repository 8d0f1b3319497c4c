package query

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/model/entity"
)

type alertSettingDao struct {
	db *gorm.DB
}

func NewAlertSettingDao(db *gorm.DB) *alertSettingDao {
	return &alertSettingDao{db: db}
}

func (a *alertSettingDao) AlertSettingCreate(ctx context.Context, setting *entity.AlertSetting) error {
	return a.db.WithContext(ctx).Create(setting).Error
}

func (a *alertSettingDao) AlertSettingUpdate(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return a.db.WithContext(ctx).Model(&entity.AlertSetting{}).Where("id = ?", id).Updates(fields).Error
}

func (a *alertSettingDao) AlertSettingGetById(ctx context.Context, id int64) (res entity.AlertSetting, err error) {
	err = a.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return
}

func (a *alertSettingDao) AlertSettingGetListByUser(ctx context.Context, userId int64) ([]entity.AlertSetting, error) {
	var arr []entity.AlertSetting
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("id").
		Find(&arr).
		Error
	return arr, err
}

func (a *alertSettingDao) AlertSettingDelete(ctx context.Context, id int64) error {
	return a.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.AlertSetting{}).Error
}
