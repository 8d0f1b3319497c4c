package entity

import "time"

// UserCoinPreference is one watchlist entry. display_order drives the
// custom ordering on the dashboard grid.
type UserCoinPreference struct {
	Id           int64     `gorm:"column:id;primary_key" json:"id"`
	UserId       int64     `gorm:"column:user_id;not null;index:idx_preferences_user" json:"user_id"`
	CoinPairId   int64     `gorm:"column:coin_pair_id;not null;index:idx_preferences_coin_pair" json:"coin_pair_id"`
	IsSelected   bool      `gorm:"column:is_selected;default:true" json:"is_selected"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserId;references:Id" json:"-"`
	CoinPair *CoinPair `gorm:"foreignKey:CoinPairId;references:Id" json:"-"`
}

func (UserCoinPreference) TableName() string {
	return "user_coin_preferences"
}
