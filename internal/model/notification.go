package model

// NotificationCreateReq is what the alert-evaluation side posts when a
// threshold is breached. New notifications always start as pending.
type NotificationCreateReq struct {
	UserId         int64  `json:"user_id" binding:"required"`
	CoinPairId     int64  `json:"coin_pair_id" binding:"required"`
	AlertSettingId int64  `json:"alert_setting_id" binding:"required"`
	Title          string `json:"title" binding:"required,max=200"`
	Message        string `json:"message" binding:"required,max=1000"`
	RSIValue       string `json:"rsi_value" binding:"required,decimal=8.4"`
	PriceAtAlert   string `json:"price_at_alert" binding:"required,decimal=20.8"`
}

type NotificationListReq struct {
	UserId int64   `json:"user_id" form:"user_id" binding:"required"`
	Status *string `json:"status" form:"status" binding:"omitempty,oneof=pending sent dismissed"`
	Page   int     `json:"page" form:"page"`
	Limit  int     `json:"limit" form:"limit"`
}

type NotificationStatusReq struct {
	Id int64 `json:"id" form:"id" binding:"required"`
}

type NotificationCountReq struct {
	UserId int64 `json:"user_id" form:"user_id" binding:"required"`
}

type NotificationRes struct {
	Id           int64  `json:"id"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Symbol       string `json:"symbol"`
	RSIValue     string `json:"rsi_value"`
	PriceAtAlert string `json:"price_at_alert"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type NotificationListRes struct {
	Notifications []NotificationRes `json:"notifications"`
}

type NotificationCountRes struct {
	Pending   int64 `json:"pending"`
	Sent      int64 `json:"sent"`
	Dismissed int64 `json:"dismissed"`
}
