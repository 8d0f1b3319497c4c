package query

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/model/entity"
)

type userDao struct {
	db *gorm.DB
}

func NewUserDao(db *gorm.DB) *userDao {
	return &userDao{db: db}
}

func (u *userDao) UserCreate(ctx context.Context, user *entity.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userDao) UserUpdate(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return u.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

func (u *userDao) UserGetById(ctx context.Context, id int64) (res entity.User, err error) {
	err = u.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return
}

func (u *userDao) UserGetList(ctx context.Context, page, limit int) ([]entity.User, int64, error) {
	var arr []entity.User
	var total int64
	q := u.db.WithContext(ctx).Model(&entity.User{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := q.Order("id").
		Limit(limit).
		Offset(offset).
		Find(&arr).
		Error
	return arr, total, err
}
