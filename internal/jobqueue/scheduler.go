// Package jobqueue enqueues scheduling jobs onto Asynq and dispatches
// them to the Job Coordinator on the worker side. It defines a single
// task type, schedule:optimize, carrying nothing but the already-created
// SchedulingJob's ID and an optional reproducibility seed — the task
// payload is a pointer into persisted state, not a copy of it.
package jobqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TypeScheduleOptimize is the Asynq task type for running the annealer
// against one already-persisted, PENDING SchedulingJob.
const TypeScheduleOptimize = "schedule:optimize"

// SchedulePayload is the schedule:optimize task payload. Seed is nil for
// a normal enqueue (the worker mints its own seed); callers that want a
// given seed — tests, re-runs for debugging a reported result — set it
// explicitly. solver.Anneal documents how far a seed fixes a run.
type SchedulePayload struct {
	SchedulingJobID int    `json:"scheduling_job_id"`
	Seed            *int64 `json:"seed,omitempty"`
}

// JobScheduler enqueues scheduling jobs for asynchronous execution by a
// worker process.
type JobScheduler struct {
	client *asynq.Client
}

// NewJobScheduler creates a JobScheduler backed by the Redis instance at
// redisAddr, verifying connectivity before returning.
func NewJobScheduler(redisAddr string) (*JobScheduler, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})

	if err := client.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &JobScheduler{client: client}, nil
}

// EnqueueScheduleOptimize enqueues a schedule:optimize task for the given
// job ID. Annealing over a multi-week roster can run long, so the task
// carries a generous timeout. It also allows a single Asynq retry, but a
// retry only re-runs the solver if the job is still PENDING: once Run
// has moved the job to RUNNING or FAILED, the retried task finds it not
// PENDING and returns without running again.
func (s *JobScheduler) EnqueueScheduleOptimize(ctx context.Context, schedulingJobID int, seed *int64) (*asynq.TaskInfo, error) {
	payload := SchedulePayload{SchedulingJobID: schedulingJobID, Seed: seed}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeScheduleOptimize, payloadBytes)

	info, err := s.client.EnqueueContext(
		ctx,
		task,
		asynq.MaxRetry(1),
		asynq.Timeout(30*time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue schedule optimize job %d: %w", schedulingJobID, err)
	}

	return info, nil
}

// Close releases the underlying Asynq client connection.
func (s *JobScheduler) Close() error {
	return s.client.Close()
}

// GetTaskInfo retrieves the current Asynq task state for taskID, for
// callers that want queue-level visibility (retries remaining, next
// scheduled attempt) beyond the SchedulingJob's own status field.
func (s *JobScheduler) GetTaskInfo(ctx context.Context, redisAddr, taskID string) (*asynq.TaskInfo, error) {
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: redisAddr})
	defer inspector.Close()

	return inspector.GetTaskInfo(ctx, "default", taskID)
}
