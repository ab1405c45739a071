// Command worker runs an Asynq server processing schedule:optimize
// tasks against its own PostgreSQL connection — the detached worker
// process the scheduling core's job lifecycle assumes.
package main

import (
	"github.com/hibiken/asynq"

	"github.com/schedcu/optimizer/internal/config"
	"github.com/schedcu/optimizer/internal/jobqueue"
	"github.com/schedcu/optimizer/internal/logging"
	"github.com/schedcu/optimizer/internal/metrics"
	"github.com/schedcu/optimizer/internal/repository/postgres"
	"github.com/schedcu/optimizer/internal/service"
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

	registry := metrics.NewRegistry()
	schedulingService := service.NewSchedulingService(db, cfg.AnnealConfig(), logger, registry)
	handlers := jobqueue.NewJobHandlers(schedulingService, logger)

	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			Concurrency: 1, // the annealer itself is single-threaded per job
			Queues:      map[string]int{"default": 1},
		},
	)

	logger.Infow("starting worker", "redis_addr", cfg.RedisAddr)
	if err := srv.Run(mux); err != nil {
		logger.Fatalf("worker stopped: %v", err)
	}
}
