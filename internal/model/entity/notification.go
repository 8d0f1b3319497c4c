package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// NotificationStatus is the delivery state of a fired alert. Transitions
// are monotonic: pending may move to sent or dismissed, nothing moves back.
type NotificationStatus string

const (
	StatusPending   NotificationStatus = "pending"
	StatusSent      NotificationStatus = "sent"
	StatusDismissed NotificationStatus = "dismissed"
)

func (s NotificationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusDismissed:
		return true
	}
	return false
}

// CanTransition reports whether moving to the target state is allowed.
func (s NotificationStatus) CanTransition(to NotificationStatus) bool {
	return s == StatusPending && (to == StatusSent || to == StatusDismissed)
}

// RSINotification is one fired alert instance, written by the evaluation
// side when a threshold is breached. Only status/sent_at/dismissed_at
// mutate afterwards.
type RSINotification struct {
	Id             int64              `gorm:"column:id;primary_key" json:"id"`
	UserId         int64              `gorm:"column:user_id;not null;index:idx_notifications_user" json:"user_id"`
	CoinPairId     int64              `gorm:"column:coin_pair_id;not null;index:idx_notifications_coin_pair" json:"coin_pair_id"`
	AlertSettingId int64              `gorm:"column:alert_setting_id;not null;index:idx_notifications_alert_setting" json:"alert_setting_id"`
	Title          string             `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Message        string             `gorm:"column:message;type:varchar(1000);not null" json:"message"`
	RSIValue       decimal.Decimal    `gorm:"column:rsi_value;type:decimal(8,4);not null" json:"rsi_value"`
	PriceAtAlert   decimal.Decimal    `gorm:"column:price_at_alert;type:decimal(20,8);not null" json:"price_at_alert"`
	Status         NotificationStatus `gorm:"column:status;type:varchar(10);not null;default:'pending';index:idx_notifications_status" json:"status"`
	CreatedAt      time.Time          `gorm:"column:created_at;index:idx_notifications_created_at" json:"created_at"`
	SentAt         sql.NullTime       `gorm:"column:sent_at" json:"sent_at"`
	DismissedAt    sql.NullTime       `gorm:"column:dismissed_at" json:"dismissed_at"`

	User         *User         `gorm:"foreignKey:UserId;references:Id" json:"-"`
	CoinPair     *CoinPair     `gorm:"foreignKey:CoinPairId;references:Id" json:"-"`
	AlertSetting *AlertSetting `gorm:"foreignKey:AlertSettingId;references:Id" json:"-"`
}

func (RSINotification) TableName() string {
	return "rsi_notifications"
}
