package main

import (
	"log"

	"rsiboard/conf"
	"rsiboard/pkg/cache"
	"rsiboard/pkg/db"
	"rsiboard/pkg/logger"
)

func main() {
	if err := conf.LoadConfig("config.yaml"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := &conf.AppConfig

	logger.Init(cfg.Log)
	defer logger.Sync()

	gormDB := db.Init(db.NewConfig(cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DbName))

	// redis is optional, the service degrades to database-only reads
	if err := cache.InitRedis(cfg.Redis); err != nil {
		logger.Warnf("redis unavailable, caching disabled: %v", err)
	}

	srv := NewServer(cfg)
	srv.RegisterOnShutdown(func() {
		cache.CloseRedis()
	})
	srv.Run(InitRouter(gormDB))
}
