package dao

import (
	"context"

	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
)

type PreferenceDao interface {
	PreferenceCreate(ctx context.Context, pref *entity.UserCoinPreference) error
	PreferenceUpdate(ctx context.Context, id int64, fields map[string]interface{}) error
	PreferenceGetById(ctx context.Context, id int64) (entity.UserCoinPreference, error)
	// PreferenceGetListByUser returns watchlist rows joined with their pair
	// symbol, ordered by display_order
	PreferenceGetListByUser(ctx context.Context, userId int64) ([]model.PreferenceRow, error)
	// PreferenceDelete hard-deletes a watchlist row
	PreferenceDelete(ctx context.Context, id int64) error
}
