package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/communityconnect/community-wifi/internal/config"
	"github.com/communityconnect/community-wifi/internal/database"
	"github.com/communityconnect/community-wifi/internal/handler"
	"github.com/communityconnect/community-wifi/internal/middleware"
	"github.com/communityconnect/community-wifi/internal/queue"
	"github.com/communityconnect/community-wifi/internal/repository"
	"github.com/communityconnect/community-wifi/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()
	if err := database.Init(context.Background(), db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	apRepo := repository.NewAccessPointRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	e := echo.New()
	e.HideBanner = true

	// Optional Redis-backed response cache; a nil client or disabled
	// config leaves the middleware a pass-through.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e,
		handler.NewAccessPointHandler(apRepo),
		handler.NewBookingHandler(apRepo, bookingRepo),
		handler.NewStatsHandler(statsRepo),
	)
	router.RegisterStatic(e, "public")

	// Background consumer that records booking events to logs/booking.log.
	go queue.StartBookingConsumer()

	addr := ":" + cfg.Port
	log.Printf("community-wifi server listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
