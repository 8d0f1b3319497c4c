package router

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/handler/alert"
	"rsiboard/internal/handler/coinpair"
	"rsiboard/internal/handler/dashconfig"
	"rsiboard/internal/handler/notification"
	"rsiboard/internal/handler/ping"
	"rsiboard/internal/handler/preference"
	"rsiboard/internal/handler/rsidata"
	"rsiboard/internal/handler/user"
	"rsiboard/internal/middleware"
)

type ApiRouter struct {
	pairHandler         *coinpair.Handler
	rsiHandler          *rsidata.Handler
	userHandler         *user.Handler
	preferenceHandler   *preference.Handler
	alertHandler        *alert.Handler
	notificationHandler *notification.Handler
	configHandler       *dashconfig.Handler
}

func NewApiRouter(
	pairHandler *coinpair.Handler,
	rsiHandler *rsidata.Handler,
	userHandler *user.Handler,
	preferenceHandler *preference.Handler,
	alertHandler *alert.Handler,
	notificationHandler *notification.Handler,
	configHandler *dashconfig.Handler,
) *ApiRouter {
	return &ApiRouter{
		pairHandler:         pairHandler,
		rsiHandler:          rsiHandler,
		userHandler:         userHandler,
		preferenceHandler:   preferenceHandler,
		alertHandler:        alertHandler,
		notificationHandler: notificationHandler,
		configHandler:       configHandler,
	}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.Use(middleware.RequestId(), middleware.NoCache(), middleware.Secure(), middleware.Options())
	g.Use(middleware.Logger)
	g.GET("/ping", ping.Ping())

	base := g.Group("/api/v1")

	p := base.Group("/pairs")
	{
		p.GET("/list", api.pairHandler.CoinPairGetList())
		p.GET("/detail", api.pairHandler.CoinPairGetDetail())
		p.POST("/create", middleware.AntiDuplicateMiddleware(), api.pairHandler.CoinPairCreate())
		p.POST("/update", api.pairHandler.CoinPairUpdate())
	}

	r := base.Group("/rsi")
	{
		// ingestion posts arrive continuously, no anti-duplicate here
		r.POST("/create", api.rsiHandler.RSIDataCreate())
		r.GET("/list", api.rsiHandler.RSIDataGetList())
		r.GET("/latest", api.rsiHandler.RSIDataGetLatest())
	}

	u := base.Group("/users")
	{
		u.GET("/list", api.userHandler.UserGetList())
		u.GET("/detail", api.userHandler.UserGetDetail())
		u.POST("/create", middleware.AntiDuplicateMiddleware(), api.userHandler.UserCreate())
		u.POST("/update", api.userHandler.UserUpdate())
	}

	w := base.Group("/watchlist")
	{
		w.GET("/list", api.preferenceHandler.PreferenceGetList())
		w.POST("/create", api.preferenceHandler.PreferenceCreate())
		w.POST("/update", api.preferenceHandler.PreferenceUpdate())
		w.DELETE("/delete", api.preferenceHandler.PreferenceDelete())
	}

	a := base.Group("/alerts")
	{
		a.GET("/list", api.alertHandler.AlertSettingGetList())
		a.POST("/create", api.alertHandler.AlertSettingCreate())
		a.POST("/update", api.alertHandler.AlertSettingUpdate())
		a.DELETE("/delete", api.alertHandler.AlertSettingDelete())
	}

	n := base.Group("/notifications")
	{
		n.GET("/list", api.notificationHandler.NotificationGetList())
		n.GET("/counts", api.notificationHandler.NotificationGetCounts())
		n.POST("/create", api.notificationHandler.NotificationCreate())
		n.POST("/sent", api.notificationHandler.NotificationMarkSent())
		n.POST("/dismiss", api.notificationHandler.NotificationMarkDismissed())
	}

	cfg := base.Group("/config")
	{
		cfg.GET("/get", api.configHandler.ConfigGet())
		cfg.POST("/update", api.configHandler.ConfigUpdate())
	}
}
