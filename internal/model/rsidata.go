package model

// RSIDataCreateReq is what the ingestion side posts. Decimal values arrive
// as strings and are checked against their column precision before any
// conversion; over-precision input is rejected, not truncated.
type RSIDataCreateReq struct {
	CoinPairId int64   `json:"coin_pair_id" binding:"required"`
	RSIValue   string  `json:"rsi_value" binding:"required,decimal=8.4"`
	Price      string  `json:"price" binding:"required,decimal=20.8"`
	Volume     *string `json:"volume" binding:"omitempty,decimal=20.8"`
	Timestamp  *string `json:"timestamp"`
	Period     *int    `json:"period" binding:"omitempty,gt=0"`
}

type RSIDataListReq struct {
	Symbol string `json:"symbol" form:"symbol" binding:"required,max=50"`
	Page   int    `json:"page" form:"page"`
	Limit  int    `json:"limit" form:"limit"`
}

type RSIDataRes struct {
	Id        int64  `json:"id"`
	Symbol    string `json:"symbol"`
	RSIValue  string `json:"rsi_value"`
	Price     string `json:"price"`
	Volume    string `json:"volume"`
	Timestamp string `json:"timestamp"`
	Period    int    `json:"period"`
}

type RSIDataListRes struct {
	Samples []RSIDataRes `json:"samples"`
}
