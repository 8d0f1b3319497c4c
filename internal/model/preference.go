package model

import "time"

// PreferenceCreateReq adds a pair to a user's watchlist.
type PreferenceCreateReq struct {
	UserId       int64 `json:"user_id" binding:"required"`
	CoinPairId   int64 `json:"coin_pair_id" binding:"required"`
	IsSelected   *bool `json:"is_selected"`
	DisplayOrder *int  `json:"display_order"`
}

type PreferenceUpdateReq struct {
	Id           int64 `json:"id" form:"id" binding:"required"`
	IsSelected   *bool `json:"is_selected"`
	DisplayOrder *int  `json:"display_order"`
}

type PreferenceListReq struct {
	UserId int64 `json:"user_id" form:"user_id" binding:"required"`
}

type PreferenceDeleteReq struct {
	Id int64 `json:"id" form:"id" binding:"required"`
}

type PreferenceRes struct {
	Id           int64  `json:"id"`
	UserId       int64  `json:"user_id"`
	CoinPairId   int64  `json:"coin_pair_id"`
	Symbol       string `json:"symbol"`
	IsSelected   bool   `json:"is_selected"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

type PreferenceListRes struct {
	Preferences []PreferenceRes `json:"preferences"`
}

// PreferenceRow is the watchlist row joined with its pair symbol.
type PreferenceRow struct {
	Id           int64     `gorm:"column:id"`
	UserId       int64     `gorm:"column:user_id"`
	CoinPairId   int64     `gorm:"column:coin_pair_id"`
	Symbol       string    `gorm:"column:symbol"`
	IsSelected   bool      `gorm:"column:is_selected"`
	DisplayOrder int       `gorm:"column:display_order"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}
