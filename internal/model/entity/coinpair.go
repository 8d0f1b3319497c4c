package entity

import (
	"gorm.io/plugin/soft_delete"

	"rsiboard/utils"
)

// CoinPair is a tradable market symbol, e.g. BTCUSDT.
// Pairs are never hard-deleted, they are retired via is_active / IsDel.
type CoinPair struct {
	Id         int64                 `gorm:"column:id;primary_key" json:"id"`
	Symbol     string                `gorm:"column:symbol;type:varchar(50);not null;uniqueIndex:uk_coin_pairs_symbol" json:"symbol"`
	BaseAsset  string                `gorm:"column:base_asset;type:varchar(20);not null" json:"base_asset"`
	QuoteAsset string                `gorm:"column:quote_asset;type:varchar(20);not null" json:"quote_asset"`
	IsActive   bool                  `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt  utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel      soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt" json:"-"`
}

func (CoinPair) TableName() string {
	return "coin_pairs"
}
