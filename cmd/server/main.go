package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"github.com/schedcu/optimizer/internal/api"
	"github.com/schedcu/optimizer/internal/config"
	"github.com/schedcu/optimizer/internal/jobqueue"
	"github.com/schedcu/optimizer/internal/logging"
	"github.com/schedcu/optimizer/internal/metrics"
	"github.com/schedcu/optimizer/internal/repository/postgres"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New("")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	scheduler, err := jobqueue.NewJobScheduler(cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("failed to connect to Redis: %v", err)
	}
	defer scheduler.Close()

	router := api.NewRouter(db, scheduler)

	registry := metrics.NewRegistry()
	router.Echo().GET("/metrics", echo.WrapHandler(registry.Handler()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("starting server", "addr", cfg.ServerAddr)
		if err := router.Start(cfg.ServerAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	if err := router.Shutdown(); err != nil {
		logger.Fatalf("server shutdown error: %v", err)
	}
}
