package model

// AlertSettingCreateReq creates an alert rule. Omitted thresholds fall back
// to 70.00/30.00; a custom condition must carry both custom_threshold and
// custom_operator. coin_pair_filters is only stored when
// applies_to_all_pairs is false.
type AlertSettingCreateReq struct {
	UserId              int64    `json:"user_id" binding:"required"`
	Name                string   `json:"name" binding:"required,max=100"`
	Condition           string   `json:"condition" binding:"required,oneof=overbought oversold custom"`
	OverboughtThreshold *string  `json:"overbought_threshold" binding:"omitempty,decimal=5.2"`
	OversoldThreshold   *string  `json:"oversold_threshold" binding:"omitempty,decimal=5.2"`
	CustomThreshold     *string  `json:"custom_threshold" binding:"omitempty,decimal=5.2"`
	CustomOperator      *string  `json:"custom_operator" binding:"omitempty,max=10"`
	AppliesToAllPairs   *bool    `json:"applies_to_all_pairs"`
	CoinPairFilters     []string `json:"coin_pair_filters" binding:"omitempty,dive,max=50"`
}

type AlertSettingUpdateReq struct {
	Id                  int64    `json:"id" form:"id" binding:"required"`
	Name                *string  `json:"name" binding:"omitempty,max=100"`
	Condition           *string  `json:"condition" binding:"omitempty,oneof=overbought oversold custom"`
	OverboughtThreshold *string  `json:"overbought_threshold" binding:"omitempty,decimal=5.2"`
	OversoldThreshold   *string  `json:"oversold_threshold" binding:"omitempty,decimal=5.2"`
	CustomThreshold     *string  `json:"custom_threshold" binding:"omitempty,decimal=5.2"`
	CustomOperator      *string  `json:"custom_operator" binding:"omitempty,max=10"`
	IsEnabled           *bool    `json:"is_enabled"`
	AppliesToAllPairs   *bool    `json:"applies_to_all_pairs"`
	CoinPairFilters     []string `json:"coin_pair_filters" binding:"omitempty,dive,max=50"`
}

type AlertSettingListReq struct {
	UserId int64 `json:"user_id" form:"user_id" binding:"required"`
}

type AlertSettingDeleteReq struct {
	Id int64 `json:"id" form:"id" binding:"required"`
}

type AlertSettingRes struct {
	Id                  int64    `json:"id"`
	UserId              int64    `json:"user_id"`
	Name                string   `json:"name"`
	Condition           string   `json:"condition"`
	OverboughtThreshold string   `json:"overbought_threshold"`
	OversoldThreshold   string   `json:"oversold_threshold"`
	CustomThreshold     string   `json:"custom_threshold,omitempty"`
	CustomOperator      string   `json:"custom_operator,omitempty"`
	IsEnabled           bool     `json:"is_enabled"`
	AppliesToAllPairs   bool     `json:"applies_to_all_pairs"`
	CoinPairFilters     []string `json:"coin_pair_filters"`
	CreatedAt           string   `json:"created_at"`
}

type AlertSettingListRes struct {
	Alerts []AlertSettingRes `json:"alerts"`
}
