package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/database"
	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/logger"
	"github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/router"
	"github.com/iliyamo/hotel-booking/internal/service"
	"github.com/iliyamo/hotel-booking/internal/storage/mysql"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logg := logger.New("hotel-booking", cfg.LogLevel)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBMaxConns, cfg.DBConnLifetime)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	store := mysql.New(db)
	events := queue.NewPublisher(cfg.AmqpURL, logg)
	svc := service.New(store, events, logg)
	h := handler.New(svc, logg)

	rdb := config.NewRedisClient()
	if rdb == nil {
		logg.Warn("redis unavailable, cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	router.Register(e, h, rdb, config.LoadCacheConfig(), config.LoadRateLimitConfig())

	addr := ":" + cfg.Port
	logg.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
