package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/metrics"
	"github.com/schedcu/optimizer/internal/repository/memory"
	"github.com/schedcu/optimizer/internal/solver"
)

func newTestService(t *testing.T) (*SchedulingService, *memory.Database) {
	t.Helper()
	db := memory.NewDatabase()
	cfg := solver.Config{Tmax: 500, Tmin: 0.1, Steps: 1000, Updates: 2}
	return NewSchedulingService(db, cfg, zap.NewNop().Sugar(), nil), db
}

func seedFixture(t *testing.T, db *memory.Database, start, end time.Time) *domain.SchedulingJob {
	t.Helper()
	ctx := context.Background()

	clinic := &domain.Clinic{Name: "Clinic", RequiredMain: 1, RequiredSub: 0}
	require.NoError(t, db.ClinicRepository().Create(ctx, clinic))

	d1 := &domain.Doctor{Name: "d1", HomeClinicID: &clinic.ID, Role: domain.RoleMain}
	require.NoError(t, db.DoctorRepository().Create(ctx, d1))
	d2 := &domain.Doctor{Name: "d2", HomeClinicID: &clinic.ID, Role: domain.RoleMain}
	require.NoError(t, db.DoctorRepository().Create(ctx, d2))

	shift := &domain.Shift{Name: "Day", StartTime: time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC), EndTime: time.Date(2000, 1, 1, 16, 0, 0, 0, time.UTC)}
	require.NoError(t, db.ShiftRepository().Create(ctx, shift))

	job := &domain.SchedulingJob{Name: "test run", StartDate: start, EndDate: end, Status: domain.JobStatusPending}
	require.NoError(t, db.SchedulingJobRepository().Create(ctx, job))

	return job
}

func TestRun_CompletesAndWritesAssignments(t *testing.T) {
	svc, db := newTestService(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	job := seedFixture(t, db, day, day)

	err := svc.Run(context.Background(), job.ID, nil)
	require.NoError(t, err)

	updated, err := db.SchedulingJobRepository().GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, updated.Status)
	assert.Contains(t, updated.StatusMessage, "completed with cost")

	assignments, err := db.AssignmentRepository().GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestRun_SkipsNonPendingJob(t *testing.T) {
	svc, db := newTestService(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	job := seedFixture(t, db, day, day)

	job.Status = domain.JobStatusCompleted
	require.NoError(t, db.SchedulingJobRepository().Update(context.Background(), job))

	err := svc.Run(context.Background(), job.ID, nil)
	require.NoError(t, err)

	assignments, err := db.AssignmentRepository().GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestRun_FailsOnInsufficientInputs(t *testing.T) {
	svc, db := newTestService(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	job := &domain.SchedulingJob{Name: "empty", StartDate: day, EndDate: day, Status: domain.JobStatusPending}
	require.NoError(t, db.SchedulingJobRepository().Create(context.Background(), job))

	err := svc.Run(context.Background(), job.ID, nil)
	assert.Error(t, err)

	updated, getErr := db.SchedulingJobRepository().GetByID(context.Background(), job.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.JobStatusFailed, updated.Status)
	assert.NotEmpty(t, updated.StatusMessage)
}

func TestRun_IdempotentSave(t *testing.T) {
	svc, db := newTestService(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	job := seedFixture(t, db, day, day)

	require.NoError(t, svc.Run(context.Background(), job.ID, nil))
	first, err := db.AssignmentRepository().GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)

	// Re-queue and re-run the same job; the result writer must replace,
	// not accumulate, assignments.
	job.Status = domain.JobStatusPending
	require.NoError(t, db.SchedulingJobRepository().Update(context.Background(), job))
	require.NoError(t, svc.Run(context.Background(), job.ID, nil))

	second, err := db.AssignmentRepository().GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}

func TestRun_SeedOverrideReproducesResult(t *testing.T) {
	svc, db := newTestService(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := int64(12345)

	job := seedFixture(t, db, day, day)
	require.NoError(t, svc.Run(context.Background(), job.ID, &seed))
	first, err := db.SchedulingJobRepository().GetByID(context.Background(), job.ID)
	require.NoError(t, err)

	svc2, db2 := newTestService(t)
	job2 := seedFixture(t, db2, day, day)
	require.NoError(t, svc2.Run(context.Background(), job2.ID, &seed))
	second, err := db2.SchedulingJobRepository().GetByID(context.Background(), job2.ID)
	require.NoError(t, err)

	assert.Equal(t, first.StatusMessage, second.StatusMessage)
}

func TestRun_RecordsMetrics(t *testing.T) {
	db := memory.NewDatabase()
	cfg := solver.Config{Tmax: 500, Tmin: 0.1, Steps: 1000, Updates: 2}
	registry := metrics.NewRegistryWithRegisterer(prometheus.NewRegistry())
	svc := NewSchedulingService(db, cfg, zap.NewNop().Sugar(), registry)

	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	job := seedFixture(t, db, day, day)

	require.NoError(t, svc.Run(context.Background(), job.ID, nil))

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	registry.Handler().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), "scheduling_jobs_started_total 1")
	assert.Contains(t, rec.Body.String(), "scheduling_jobs_completed_total 1")
}
