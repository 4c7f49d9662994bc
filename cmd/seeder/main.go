package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wastefleet/internal/config"
	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/logger"
	"github.com/ukydev/wastefleet/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.WithError(err).Fatal("seeding failed")
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

	store, err := db.Open(ctx, cfg.Mongo, l)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			l.WithError(err).Warn("closing MongoDB connection")
		}
	}()

	gen := seed.NewGenerator(cfg.SeedRandom, func() time.Time { return time.Now().UTC() })
	seeder := seed.NewSeeder(gen, store.Vehicles(), store.Producers(), store.Collections(), l)
	if _, err := seeder.SeedAll(ctx); err != nil {
		return err
	}
	return store.EnsureIndexes(ctx)
}
