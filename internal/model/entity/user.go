package entity

import (
	"gorm.io/plugin/soft_delete"

	"rsiboard/utils"
)

type User struct {
	Id        int64                 `gorm:"column:id;primary_key" json:"id"`
	Username  string                `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_users_username" json:"username"`
	Email     string                `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_users_email" json:"email"`
	IsActive  bool                  `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt" json:"-"`
}

func (User) TableName() string {
	return "users"
}
