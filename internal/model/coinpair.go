package model

// CoinPairCreateReq creates a trading pair. is_active defaults to true
// when omitted.
type CoinPairCreateReq struct {
	Symbol     string `json:"symbol" binding:"required,max=50"`
	BaseAsset  string `json:"base_asset" binding:"required,max=20"`
	QuoteAsset string `json:"quote_asset" binding:"required,max=20"`
	IsActive   *bool  `json:"is_active"`
}

// CoinPairUpdateReq mutates only the supplied fields.
type CoinPairUpdateReq struct {
	Id         int64   `json:"id" form:"id" binding:"required"`
	Symbol     *string `json:"symbol" binding:"omitempty,max=50"`
	BaseAsset  *string `json:"base_asset" binding:"omitempty,max=20"`
	QuoteAsset *string `json:"quote_asset" binding:"omitempty,max=20"`
	IsActive   *bool   `json:"is_active"`
}

type CoinPairDetailReq struct {
	Symbol string `json:"symbol" form:"symbol" binding:"required,max=50"`
}

type CoinPairListReq struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

type CoinPairRes struct {
	Id         int64  `json:"id"`
	Symbol     string `json:"symbol"`
	BaseAsset  string `json:"base_asset"`
	QuoteAsset string `json:"quote_asset"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	// LatestRSI is the newest sample's value as an exact string, empty when
	// the pair has no samples yet.
	LatestRSI string `json:"latest_rsi,omitempty"`
}

type CoinPairListRes struct {
	CoinPairs []CoinPairRes `json:"coin_pairs"`
	Total     int64         `json:"total"`
}
