package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AlertCondition restricts an alert rule to its named trigger kinds,
// stored as the canonical string.
type AlertCondition string

const (
	ConditionOverbought AlertCondition = "overbought"
	ConditionOversold   AlertCondition = "oversold"
	ConditionCustom     AlertCondition = "custom"
)

func (c AlertCondition) Valid() bool {
	switch c {
	case ConditionOverbought, ConditionOversold, ConditionCustom:
		return true
	}
	return false
}

// AlertSetting is a user-defined RSI alert rule. CoinPairFilters only
// matters when AppliesToAllPairs is false.
type AlertSetting struct {
	Id                  int64               `gorm:"column:id;primary_key" json:"id"`
	UserId              int64               `gorm:"column:user_id;not null;index:idx_alert_settings_user" json:"user_id"`
	Name                string              `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Condition           AlertCondition      `gorm:"column:condition;type:varchar(20);not null;index:idx_alert_settings_condition" json:"condition"`
	OverboughtThreshold decimal.Decimal     `gorm:"column:overbought_threshold;type:decimal(5,2);default:70.00" json:"overbought_threshold"`
	OversoldThreshold   decimal.Decimal     `gorm:"column:oversold_threshold;type:decimal(5,2);default:30.00" json:"oversold_threshold"`
	CustomThreshold     decimal.NullDecimal `gorm:"column:custom_threshold;type:decimal(5,2)" json:"custom_threshold"`
	CustomOperator      sql.NullString      `gorm:"column:custom_operator;type:varchar(10)" json:"custom_operator"`
	IsEnabled           bool                `gorm:"column:is_enabled;default:true" json:"is_enabled"`
	AppliesToAllPairs   bool                `gorm:"column:applies_to_all_pairs;default:true" json:"applies_to_all_pairs"`
	CoinPairFilters     datatypes.JSON      `gorm:"column:coin_pair_filters;type:json" json:"coin_pair_filters"`
	CreatedAt           time.Time           `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time           `gorm:"column:updated_at" json:"updated_at"`

	User *User `gorm:"foreignKey:UserId;references:Id" json:"-"`
}

func (AlertSetting) TableName() string {
	return "alert_settings"
}
