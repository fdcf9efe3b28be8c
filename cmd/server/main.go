package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/cargolink/freight-backend/internal/config"
	"github.com/cargolink/freight-backend/internal/database"
	"github.com/cargolink/freight-backend/internal/handler"
	"github.com/cargolink/freight-backend/internal/middleware"
	"github.com/cargolink/freight-backend/internal/queue"
	"github.com/cargolink/freight-backend/internal/repository"
	"github.com/cargolink/freight-backend/internal/router"
)

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)
	quotes := repository.NewQuoteRepo(db)
	bids := repository.NewBidRepo(db)
	shipments := repository.NewShipmentRepo(db)

	authH := handler.NewAuthHandler(cfg, users, sessions)
	quoteH := handler.NewQuoteHandler(quotes, bids, shipments, users)

	var limiter echo.MiddlewareFunc
	rlCfg := config.LoadRateLimitConfig()
	if rdb := config.NewRedisClient(); rdb != nil {
		limiter = middleware.NewTokenBucket(rlCfg, rdb)
		log.Printf("rate limiter enabled (capacity=%d)", rlCfg.Capacity)
	} else {
		log.Printf("redis unreachable, rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTAccessSecret, limiter)
	router.RegisterMarketplace(e, quoteH, cfg.JWTAccessSecret)

	// Session housekeeping: drop expired and revoked rows on a timer.
	go func() {
		ticker := time.NewTicker(cfg.PruneInterval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := sessions.DeleteExpired(ctx)
			cancel()
			if err != nil {
				log.Printf("session prune failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("pruned %d dead sessions", n)
			}
		}
	}()

	// Shipment event consumer runs in the background and reconnects on its
	// own; it never takes the API down with it.
	go func() {
		if err := queue.StartShipmentConsumer(); err != nil {
			log.Printf("shipment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
