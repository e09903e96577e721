// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/dryfruits-storefront/internal/app"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
	"github.com/your-org/dryfruits-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/dryfruits-storefront/internal/interfaces/http"
	"github.com/your-org/dryfruits-storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"auth":        cfg.Auth.Provider,
	}).Info("starting storefront")

	// Redis only backs the rate limiter; without it requests are not limited
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		conn, err := redis.NewConnection(context.Background(), cfg, log)
		if err != nil {
			log.WithError(err).Fatal("redis connection failed")
		}
		defer conn.Close()
		redisClient = conn.GetClient()
	}

	state := app.New(cfg, session.NewProvider(cfg), log)
	log.WithField("products", len(state.Catalog.List())).Info("catalog ready")

	server := http.NewServer(cfg, state, redisClient, log)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}

	log.Info("server shutdown completed")
}
