package dao

import (
	"context"

	"rsiboard/internal/model/entity"
)

type AlertSettingDao interface {
	AlertSettingCreate(ctx context.Context, setting *entity.AlertSetting) error
	AlertSettingUpdate(ctx context.Context, id int64, fields map[string]interface{}) error
	AlertSettingGetById(ctx context.Context, id int64) (entity.AlertSetting, error)
	AlertSettingGetListByUser(ctx context.Context, userId int64) ([]entity.AlertSetting, error)
	// AlertSettingDelete hard-deletes a rule; its notifications keep their
	// alert_setting_id for history
	AlertSettingDelete(ctx context.Context, id int64) error
}
