package query

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/model/entity"
)

type notificationDao struct {
	db *gorm.DB
}

func NewNotificationDao(db *gorm.DB) *notificationDao {
	return &notificationDao{db: db}
}

func (n *notificationDao) NotificationCreate(ctx context.Context, notification *entity.RSINotification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationDao) NotificationGetById(ctx context.Context, id int64) (res entity.RSINotification, err error) {
	err = n.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return
}

func (n *notificationDao) NotificationGetListByUser(ctx context.Context, userId int64, status entity.NotificationStatus, page, limit int) ([]entity.RSINotification, error) {
	q := n.db.WithContext(ctx).
		Preload("CoinPair").
		Where("user_id = ?", userId)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	offset := (page - 1) * limit
	var arr []entity.RSINotification
	err := q.Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&arr).
		Error
	return arr, err
}

func (n *notificationDao) NotificationUpdateStatus(ctx context.Context, id int64, fields map[string]interface{}) error {
	return n.db.WithContext(ctx).Model(&entity.RSINotification{}).Where("id = ?", id).Updates(fields).Error
}

func (n *notificationDao) NotificationCountByStatus(ctx context.Context, userId int64) (map[entity.NotificationStatus]int64, error) {
	type row struct {
		Status entity.NotificationStatus `gorm:"column:status"`
		Total  int64                     `gorm:"column:total"`
	}
	var rows []row
	err := n.db.WithContext(ctx).
		Model(&entity.RSINotification{}).
		Select("status, count(*) as total").
		Where("user_id = ?", userId).
		Group("status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.NotificationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
