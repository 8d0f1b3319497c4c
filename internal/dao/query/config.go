package query

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rsiboard/internal/model/entity"
)

type dashboardConfigDao struct {
	db *gorm.DB
}

func NewDashboardConfigDao(db *gorm.DB) *dashboardConfigDao {
	return &dashboardConfigDao{db: db}
}

// ConfigGet reads the singleton row, seeding the defaults on first access.
func (d *dashboardConfigDao) ConfigGet(ctx context.Context) (res entity.DashboardConfig, err error) {
	err = d.db.WithContext(ctx).Order("id").First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seeded := entity.DefaultDashboardConfig()
		if err = d.db.WithContext(ctx).Create(seeded).Error; err != nil {
			return
		}
		return *seeded, nil
	}
	return
}

func (d *dashboardConfigDao) ConfigUpdate(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Model(&entity.DashboardConfig{}).Where("id = ?", id).Updates(fields).Error
}
