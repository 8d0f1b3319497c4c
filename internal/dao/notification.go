package dao

import (
	"context"

	"rsiboard/internal/model/entity"
)

type NotificationDao interface {
	NotificationCreate(ctx context.Context, n *entity.RSINotification) error
	NotificationGetById(ctx context.Context, id int64) (entity.RSINotification, error)
	// NotificationGetListByUser pages newest-first, preloading the pair for
	// the response symbol; status filters when non-empty
	NotificationGetListByUser(ctx context.Context, userId int64, status entity.NotificationStatus, page, limit int) ([]entity.RSINotification, error)
	// NotificationUpdateStatus writes status plus the matching timestamp
	NotificationUpdateStatus(ctx context.Context, id int64, fields map[string]interface{}) error
	NotificationCountByStatus(ctx context.Context, userId int64) (map[entity.NotificationStatus]int64, error)
}
