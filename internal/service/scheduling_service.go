// Package service implements the Job Coordinator: the only component
// that touches persistence, the solver package, and the job lifecycle
// state machine together. Everything it orchestrates is pure/in-memory
// (internal/solver) or a narrow persistence interface
// (internal/repository) — this package owns the wiring and failure
// handling between them.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/metrics"
	"github.com/schedcu/optimizer/internal/repository"
	"github.com/schedcu/optimizer/internal/solver"
)

// SchedulingService runs scheduling jobs end to end: load inputs, build
// and anneal a solution, persist assignments, and drive the job's
// status lifecycle. One instance is owned per detached worker process.
type SchedulingService struct {
	db      repository.Database
	config  solver.Config
	logger  *zap.SugaredLogger
	metrics *metrics.Registry
}

// NewSchedulingService creates a SchedulingService. registry may be nil —
// a nil registry simply means no metrics are recorded, for callers (such
// as the run-solver debug entry point) that don't want one-off runs
// counted against the worker's production series.
func NewSchedulingService(db repository.Database, config solver.Config, logger *zap.SugaredLogger, registry *metrics.Registry) *SchedulingService {
	return &SchedulingService{db: db, config: config, logger: logger, metrics: registry}
}

// Run executes the full PENDING → RUNNING → {COMPLETED, FAILED}
// lifecycle for one job, per spec §4.F. A job that is not currently
// PENDING is left untouched — the call returns quietly. seedOverride, if
// non-nil, replaces the freshly minted seed the annealer would otherwise
// draw; solver.Anneal documents how far a seed fixes a run's outcome.
func (s *SchedulingService) Run(ctx context.Context, jobID int, seedOverride *int64) error {
	job, err := s.db.SchedulingJobRepository().GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job %d: %w", jobID, err)
	}

	if job.Status != domain.JobStatusPending {
		s.logger.Infow("skipping job not in PENDING status", "job_id", jobID, "status", job.Status)
		return nil
	}

	if err := s.transitionTo(ctx, job, domain.JobStatusRunning, ""); err != nil {
		return fmt.Errorf("failed to start job %d: %w", jobID, err)
	}
	if s.metrics != nil {
		s.metrics.RecordJobStarted()
	}

	seed := time.Now().UnixNano()
	if seedOverride != nil {
		seed = *seedOverride
	}

	startTime := time.Now()
	result, err := s.solve(ctx, job, seed)
	if err != nil {
		s.fail(ctx, jobID, err)
		return err
	}

	if err := s.save(ctx, jobID, result); err != nil {
		s.fail(ctx, jobID, err)
		return err
	}

	message := fmt.Sprintf("completed with cost: %.2f (seed %d)", result.BestEnergy, seed)
	if _, err := s.reloadAndTransition(ctx, jobID, domain.JobStatusCompleted, message); err != nil {
		return fmt.Errorf("failed to complete job %d: %w", jobID, err)
	}
	if s.metrics != nil {
		s.metrics.RecordJobCompleted(time.Since(startTime).Seconds(), result.BestEnergy)
	}

	s.logger.Infow("job completed", "job_id", jobID, "best_energy", result.BestEnergy, "seed", seed)
	return nil
}

// solve loads the job's inputs, builds the Context Store and an initial
// State, and runs the Annealer to completion. A panic inside the solver
// is recovered and returned as an error, so Run still moves the job to
// FAILED.
func (s *SchedulingService) solve(ctx context.Context, job *domain.SchedulingJob, seed int64) (result solver.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = solver.Result{}, fmt.Errorf("solver panicked: %v", r)
		}
	}()

	doctors, err := s.db.DoctorRepository().GetAll(ctx)
	if err != nil {
		return solver.Result{}, fmt.Errorf("failed to load doctors: %w", err)
	}
	clinics, err := s.db.ClinicRepository().GetAll(ctx)
	if err != nil {
		return solver.Result{}, fmt.Errorf("failed to load clinics: %w", err)
	}
	shifts, err := s.db.ShiftRepository().GetAll(ctx)
	if err != nil {
		return solver.Result{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	leaves, err := s.db.LeaveApprovalRepository().GetByDateRange(ctx, job.StartDate, job.EndDate)
	if err != nil {
		return solver.Result{}, fmt.Errorf("failed to load leave approvals: %w", err)
	}
	preferences, err := s.db.PreferenceRepository().GetAll(ctx)
	if err != nil {
		return solver.Result{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	solverCtx, err := solver.NewContext(doctors, clinics, shifts, leaves, preferences, job.StartDate, job.EndDate)
	if err != nil {
		return solver.Result{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	initial := solver.BuildInitialState(solverCtx, rng)

	result = solver.Anneal(solverCtx, initial, s.config, seed, s.logger)
	return result, nil
}

// save overwrites any prior assignments linked to jobID with the new
// set, atomically: delete-then-insert inside one transaction. No
// partial writes ever land — on any failure the transaction rolls back
// and no assignments for the job exist.
func (s *SchedulingService) save(ctx context.Context, jobID int, result solver.Result) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}

	if _, err := tx.AssignmentRepository().DeleteByJobID(ctx, jobID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear prior assignments: %w", err)
	}

	assignments := flattenAssignments(jobID, result.BestState)
	if err := tx.AssignmentRepository().CreateBatch(ctx, assignments); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write new assignments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save transaction: %w", err)
	}

	return nil
}

// flattenAssignments projects a solver State into the persistence-facing
// Assignment records the result writer interface (§6 interface 2)
// consumes.
func flattenAssignments(jobID int, state *solver.State) []domain.Assignment {
	var assignments []domain.Assignment
	for key, doctorIDs := range state.Assignments {
		for _, doctorID := range doctorIDs {
			assignments = append(assignments, domain.Assignment{
				JobID:    jobID,
				Date:     key.Date,
				DoctorID: doctorID,
				ClinicID: key.ClinicID,
				ShiftID:  key.ShiftID,
			})
		}
	}
	return assignments
}

// fail rolls the job to FAILED with a truncated description of err. It
// never panics or propagates a secondary failure past a log line — the
// job record is the only durable signal of what went wrong.
func (s *SchedulingService) fail(ctx context.Context, jobID int, cause error) {
	message := domain.TruncateStatusMessage(cause.Error())
	if _, err := s.reloadAndTransition(ctx, jobID, domain.JobStatusFailed, message); err != nil {
		s.logger.Errorw("failed to persist job failure", "job_id", jobID, "cause", cause, "transition_error", err)
	}
	if s.metrics != nil {
		s.metrics.RecordJobFailed()
	}
}

// reloadAndTransition re-fetches the job (in case another process
// advanced it) and writes a new status/message pair.
func (s *SchedulingService) reloadAndTransition(ctx context.Context, jobID int, status domain.JobStatus, message string) (*domain.SchedulingJob, error) {
	job, err := s.db.SchedulingJobRepository().GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload job %d: %w", jobID, err)
	}
	if err := s.transitionTo(ctx, job, status, message); err != nil {
		return nil, err
	}
	return job, nil
}

// transitionTo persists a new status/message pair on job immediately,
// so external observers polling the job status channel see progress as
// it happens.
func (s *SchedulingService) transitionTo(ctx context.Context, job *domain.SchedulingJob, status domain.JobStatus, message string) error {
	job.Status = status
	job.StatusMessage = message
	return s.db.SchedulingJobRepository().Update(ctx, job)
}
