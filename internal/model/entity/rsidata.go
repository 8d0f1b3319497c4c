package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RSIData is one indicator sample for a pair. Rows are written continuously
// by the ingestion side and pruned against dashboard_config.max_historical_records.
type RSIData struct {
	Id         int64           `gorm:"column:id;primary_key" json:"id"`
	CoinPairId int64           `gorm:"column:coin_pair_id;not null;index:idx_rsi_data_coin_pair" json:"coin_pair_id"`
	RSIValue   decimal.Decimal `gorm:"column:rsi_value;type:decimal(8,4);not null" json:"rsi_value"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(20,8);not null" json:"price"`
	Volume     decimal.Decimal `gorm:"column:volume;type:decimal(20,8);default:0" json:"volume"`
	Timestamp  time.Time       `gorm:"column:timestamp;type:timestamp;not null;index:idx_rsi_data_timestamp" json:"timestamp"`
	Period     int             `gorm:"column:period;default:14" json:"period"`

	CoinPair *CoinPair `gorm:"foreignKey:CoinPairId;references:Id" json:"-"`
}

func (RSIData) TableName() string {
	return "rsi_data"
}
