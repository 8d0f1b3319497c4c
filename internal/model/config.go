package model

// DashboardConfigUpdateReq mutates the singleton configuration row. The
// settings maps replace their stored counterparts wholesale when supplied.
type DashboardConfigUpdateReq struct {
	RefreshInterval      *int                   `json:"refresh_interval" binding:"omitempty,gt=0"`
	DefaultRSIPeriod     *int                   `json:"default_rsi_period" binding:"omitempty,gt=0"`
	MaxHistoricalRecords *int                   `json:"max_historical_records" binding:"omitempty,gt=0"`
	DisplaySettings      map[string]interface{} `json:"display_settings"`
	ApiSettings          map[string]interface{} `json:"api_settings"`
}

type DashboardConfigRes struct {
	Id                   int64                  `json:"id"`
	RefreshInterval      int                    `json:"refresh_interval"`
	DefaultRSIPeriod     int                    `json:"default_rsi_period"`
	MaxHistoricalRecords int                    `json:"max_historical_records"`
	DisplaySettings      map[string]interface{} `json:"display_settings"`
	ApiSettings          map[string]interface{} `json:"api_settings"`
	UpdatedAt            string                 `json:"updated_at"`
}
