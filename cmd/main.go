package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wastefleet/internal/config"
	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/logger"
	"github.com/ukydev/wastefleet/internal/metrics"
	"github.com/ukydev/wastefleet/internal/middleware"
	"github.com/ukydev/wastefleet/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	l, err := logger.FromConfig(cfg)
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)

	store, err := db.Open(ctx, cfg.Mongo, l)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			l.WithError(err).Warn("closing MongoDB connection")
		}
	}()

	m := metrics.New()
	store.SetObserver(m)

	router := server.NewRouter(server.Deps{
		Vehicles:    store.Vehicles(),
		Producers:   store.Producers(),
		Collections: store.Collections(),
		Database:    store,
		Metrics:     m,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:      l,
	})

	return server.New(cfg.Addr(), router, cfg.ShutdownTimeout, l).Run(ctx)
}
