package consts

const (
	// RequestId context key for the per-request id
	RequestId = "request_id"

	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
	// ResponseTimeLayout is how every timestamp leaves the API
	ResponseTimeLayout = "2006-01-02T15:04:05Z07:00"
)

// Create-time defaults. Updates never re-apply these.
const (
	DefaultRSIPeriod       = 14
	DefaultRefreshInterval = 5
	DefaultMaxHistory      = 1000

	DefaultOverboughtThreshold = "70.00"
	DefaultOversoldThreshold   = "30.00"
)

// redis key prefixes
const (
	LatestRSIPrefix    = "rsi:latest:"
	DashboardConfigKey = "dashboard:config"

	// CacheExrDefault default redis expiry
	CacheExrDefaultSeconds = 60 * 60
)
