package dao

import (
	"context"

	"rsiboard/internal/model/entity"
)

type UserDao interface {
	// UserCreate inserts an account; unique username/email violations
	// surface as gorm.ErrDuplicatedKey
	UserCreate(ctx context.Context, user *entity.User) error
	UserUpdate(ctx context.Context, id int64, fields map[string]interface{}) error
	UserGetById(ctx context.Context, id int64) (entity.User, error)
	UserGetList(ctx context.Context, page, limit int) ([]entity.User, int64, error)
}
