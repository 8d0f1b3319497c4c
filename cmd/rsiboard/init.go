package main

import (
	"gorm.io/gorm"

	"rsiboard/internal/dao/query"
	"rsiboard/internal/handler/alert"
	"rsiboard/internal/handler/coinpair"
	"rsiboard/internal/handler/dashconfig"
	"rsiboard/internal/handler/notification"
	"rsiboard/internal/handler/preference"
	"rsiboard/internal/handler/rsidata"
	"rsiboard/internal/handler/user"
	"rsiboard/internal/router"
	"rsiboard/internal/service"
)

func InitRouter(db *gorm.DB) Router {
	pairDao := query.NewCoinPairDao(db)
	rsiDao := query.NewRSIDataDao(db)
	userDao := query.NewUserDao(db)
	prefDao := query.NewPreferenceDao(db)
	alertDao := query.NewAlertSettingDao(db)
	notificationDao := query.NewNotificationDao(db)
	configDao := query.NewDashboardConfigDao(db)

	pairService := service.NewCoinPairService(pairDao, rsiDao)
	rsiService := service.NewRSIDataService(rsiDao, pairDao, configDao)
	userService := service.NewUserService(userDao)
	prefService := service.NewPreferenceService(prefDao, userDao, pairDao)
	alertService := service.NewAlertSettingService(alertDao, userDao)
	notificationService := service.NewNotificationService(notificationDao, userDao, pairDao, alertDao)
	configService := service.NewDashboardConfigService(configDao)

	return router.NewApiRouter(
		coinpair.NewHandler(pairService),
		rsidata.NewHandler(rsiService),
		user.NewHandler(userService),
		preference.NewHandler(prefService),
		alert.NewHandler(alertService),
		notification.NewHandler(notificationService),
		dashconfig.NewHandler(configService),
	)
}
