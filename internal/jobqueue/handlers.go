package jobqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Runner is the subset of the Job Coordinator that job handlers need.
// SchedulingService satisfies it; the interface exists so handlers can
// be tested against a stub without standing up persistence or a solver.
type Runner interface {
	Run(ctx context.Context, jobID int, seedOverride *int64) error
}

// JobHandlers dispatches Asynq tasks to the Job Coordinator.
type JobHandlers struct {
	runner Runner
	logger *zap.SugaredLogger
}

// NewJobHandlers creates a JobHandlers bound to runner.
func NewJobHandlers(runner Runner, logger *zap.SugaredLogger) *JobHandlers {
	return &JobHandlers{runner: runner, logger: logger}
}

// RegisterHandlers wires every task type this package defines onto mux.
// HandleScheduleOptimize is the worker's caller of the Job Coordinator's
// Run method; the run-solver debug command also calls Run directly.
func (h *JobHandlers) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeScheduleOptimize, h.HandleScheduleOptimize)
}

// HandleScheduleOptimize runs the annealer for one scheduling job. A
// malformed payload is a permanent failure (SkipRetry) — no amount of
// retrying will fix a bad JSON body. A Run error is wrapped and returned
// so Asynq's retry policy applies. When the solver or the save failed,
// SchedulingService.Run has already moved the job to FAILED with a
// status message, so the retried task finds the job not PENDING and
// does not run it again.
func (h *JobHandlers) HandleScheduleOptimize(ctx context.Context, t *asynq.Task) error {
	var payload SchedulePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	h.logger.Infow("executing schedule optimize job", "scheduling_job_id", payload.SchedulingJobID)

	if err := h.runner.Run(ctx, payload.SchedulingJobID, payload.Seed); err != nil {
		h.logger.Errorw("schedule optimize job failed", "scheduling_job_id", payload.SchedulingJobID, "error", err)
		return fmt.Errorf("schedule optimize failed: %w", err)
	}

	h.logger.Infow("schedule optimize job completed", "scheduling_job_id", payload.SchedulingJobID)
	return nil
}
