package dao

import (
	"context"

	"rsiboard/internal/model/entity"
)

type DashboardConfigDao interface {
	// ConfigGet returns the singleton row, creating it with defaults when
	// the table is empty
	ConfigGet(ctx context.Context) (entity.DashboardConfig, error)
	ConfigUpdate(ctx context.Context, id int64, fields map[string]interface{}) error
}
