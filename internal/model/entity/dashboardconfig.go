package entity

import (
	"time"

	"gorm.io/datatypes"

	"rsiboard/internal/consts"
)

// DashboardConfig is the global singleton configuration row. The two JSON
// maps hold schema-light settings that the service layer validates key by key.
type DashboardConfig struct {
	Id                   int64              `gorm:"column:id;primary_key" json:"id"`
	RefreshInterval      int                `gorm:"column:refresh_interval;default:5" json:"refresh_interval"`
	DefaultRSIPeriod     int                `gorm:"column:default_rsi_period;default:14" json:"default_rsi_period"`
	MaxHistoricalRecords int                `gorm:"column:max_historical_records;default:1000" json:"max_historical_records"`
	DisplaySettings      datatypes.JSONMap `gorm:"column:display_settings;type:json" json:"display_settings"`
	ApiSettings          datatypes.JSONMap `gorm:"column:api_settings;type:json" json:"api_settings"`
	CreatedAt            time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (DashboardConfig) TableName() string {
	return "dashboard_config"
}

// DefaultDashboardConfig builds the row that gets created on first read.
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		RefreshInterval:      consts.DefaultRefreshInterval,
		DefaultRSIPeriod:     consts.DefaultRSIPeriod,
		MaxHistoricalRecords: consts.DefaultMaxHistory,
		DisplaySettings: datatypes.JSONMap{
			"show_volume":    true,
			"show_price":     true,
			"show_timestamp": true,
			"theme":          "light",
			"grid_columns":   4,
		},
		ApiSettings: datatypes.JSONMap{
			"base_url":   "https://fapi.binance.com",
			"rate_limit": 1200,
			"timeout":    10,
		},
	}
}
