// Command run-solver runs the Job Coordinator directly against one
// already-persisted PENDING job, bypassing the job queue entirely — the
// same escape hatch the source system's run_solver_directly.py gave
// developers for debugging a specific job without a worker process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/schedcu/optimizer/internal/config"
	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/logging"
	"github.com/schedcu/optimizer/internal/repository/postgres"
	"github.com/schedcu/optimizer/internal/service"
)

func main() {
	jobID := flag.Int("job-id", 0, "ID of the PENDING scheduling job to run")
	seed := flag.Int64("seed", 0, "override the annealer's random seed (0 means let the worker mint its own)")
	flag.Parse()

	if *jobID == 0 {
		log.Fatal("must pass -job-id")
	}

	var seedOverride *int64
	if *seed != 0 {
		seedOverride = seed
	}

	cfg := config.Load()
	logger, err := logging.New("development")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	job, err := db.SchedulingJobRepository().GetByID(ctx, *jobID)
	if err != nil {
		logger.Fatalf("job %d not found: %v", *jobID, err)
	}
	if job.Status != domain.JobStatusPending {
		logger.Fatalf("job %d is not PENDING (status: %s)", *jobID, job.Status)
	}

	// No metrics registry: a one-off debug run shouldn't count against the
	// worker's production job counters.
	svc := service.NewSchedulingService(db, cfg.AnnealConfig(), logger, nil)

	fmt.Printf("--- running scheduling job %d directly ---\n", *jobID)
	if err := svc.Run(ctx, *jobID, seedOverride); err != nil {
		fmt.Printf("run failed: %v\n", err)
	}

	after, err := db.SchedulingJobRepository().GetByID(ctx, *jobID)
	if err != nil {
		logger.Fatalf("failed to reload job %d: %v", *jobID, err)
	}
	fmt.Printf("--- run complete: job %d status is %s ---\n", *jobID, after.Status)
	if after.Status == domain.JobStatusFailed {
		fmt.Printf("failure reason: %s\n", after.StatusMessage)
	}
}
